package client

import (
	"encoding/json"
	"fmt"
	"mime"
	"strings"
)

const (
	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html"

	// bodyExcerptLimit bounds the diagnostic excerpt attached to
	// format errors.
	bodyExcerptLimit = 512
)

// validateResponse decides the Result for one completed attempt.
// Decision order, first match wins: 404, 5xx, remaining 4xx, HTML
// rejection, then body decoding. It never panics: an unexpected decode
// failure is converted into a format error.
func validateResponse(raw *rawResponse, opts *RequestOptions, url string) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			err := newError(KindFormat, raw.StatusCode, "response decoding panicked", url, nil).
				withDetail("panic", fmt.Sprint(r))
			res = failureResult(err, raw.Headers)
		}
	}()

	isHTML := declaresHTML(raw.Headers.Get("Content-Type"))
	isJSON := declaresJSON(raw.Headers.Get("Content-Type"))

	switch {
	case raw.StatusCode == 404:
		err := newError(KindNotFound, 404, "resource not found", url, nil)
		return failureResult(err, raw.Headers)

	case raw.StatusCode >= 500 && raw.StatusCode < 600:
		// The body is read defensively; a failed read leaves the
		// excerpt empty rather than failing the classification.
		err := newError(KindServer, raw.StatusCode, "server error response", url, nil)
		if raw.readErr == nil && len(raw.Body) > 0 {
			err.withDetail("excerpt", bodyExcerpt(raw.Body))
		}
		return failureResult(err, raw.Headers)

	case raw.StatusCode >= 400 && raw.StatusCode < 500:
		err := newError(KindClient, raw.StatusCode, "client error response", url, nil)
		if len(raw.Body) > 0 {
			err.withDetail("excerpt", bodyExcerpt(raw.Body))
		}
		return failureResult(err, raw.Headers)
	}

	if raw.readErr != nil {
		err := newError(KindNetwork, raw.StatusCode, "failed to read response body", url, raw.readErr)
		return failureResult(err, raw.Headers)
	}

	if isHTML && opts.ValidateJSON && opts.ExpectJSON {
		// An HTML document where an API payload belongs means a
		// misrouted or misconfigured endpoint, not data.
		err := newError(KindFormat, raw.StatusCode, "expected JSON but received an HTML document", url, nil).
			withDetail("content_type", raw.Headers.Get("Content-Type")).
			withDetail("expected", contentTypeJSON)
		res := failureResult(err, raw.Headers)
		res.IsHTML = true
		return res
	}

	switch {
	case isJSON:
		if len(raw.Body) == 0 {
			return successResult(raw.StatusCode, nil, nil, raw.Headers)
		}
		var data any
		if err := json.Unmarshal(raw.Body, &data); err != nil {
			ferr := newError(KindFormat, raw.StatusCode, "failed to parse JSON response", url, err).
				withDetail("excerpt", bodyExcerpt(raw.Body))
			return failureResult(ferr, raw.Headers)
		}
		return successResult(raw.StatusCode, data, raw.Body, raw.Headers)

	case opts.ExpectJSON:
		err := newError(KindFormat, raw.StatusCode, "expected JSON but received a different content type", url, nil).
			withDetail("content_type", raw.Headers.Get("Content-Type")).
			withDetail("expected", contentTypeJSON)
		res := failureResult(err, raw.Headers)
		res.IsHTML = isHTML
		return res

	default:
		// Opaque text semantics: the body is returned verbatim.
		res := successResult(raw.StatusCode, nil, raw.Body, raw.Headers)
		res.IsHTML = isHTML
		return res
	}
}

// declaresJSON reports whether the content type declares a JSON
// payload, including +json suffixed media types.
func declaresJSON(contentType string) bool {
	return mediaType(contentType) == contentTypeJSON || strings.HasSuffix(mediaType(contentType), "+json")
}

// declaresHTML reports whether the content type declares an HTML document.
func declaresHTML(contentType string) bool {
	mt := mediaType(contentType)
	return mt == contentTypeHTML || mt == "application/xhtml+xml"
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	}
	return mt
}

// bodyExcerpt returns a bounded prefix of the body for diagnostics.
func bodyExcerpt(body []byte) string {
	if len(body) > bodyExcerptLimit {
		return string(body[:bodyExcerptLimit])
	}
	return string(body)
}
