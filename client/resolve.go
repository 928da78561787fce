package client

import "strings"

// resolveURL turns a caller-supplied path into one absolute address.
// Paths that already carry a transport scheme pass through unchanged so
// call sites can bypass the base address for cross-origin calls.
// Resolution is idempotent and cannot fail.
func resolveURL(baseURL, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
