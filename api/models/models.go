package models

import (
	"net/http"
	"sort"
	"strings"
)

// HeaderMap is the /ping payload: one value per header name.
type HeaderMap map[string]string

// FromRequest flattens the request headers into a HeaderMap keyed by
// lowercased name. The last value of a repeated header wins. Values that
// are not valid header text are replaced with an empty string.
func FromRequest(r *http.Request) HeaderMap {
	headers := make(HeaderMap, len(r.Header)+3)

	// net/http lifts Host, Transfer-Encoding and Trailer out of the header collection.
	if r.Host != "" {
		headers["host"] = textOrEmpty(r.Host)
	}
	if len(r.TransferEncoding) > 0 {
		headers["transfer-encoding"] = textOrEmpty(strings.Join(r.TransferEncoding, ", "))
	}
	if len(r.Trailer) > 0 {
		names := make([]string, 0, len(r.Trailer))
		for name := range r.Trailer {
			names = append(names, name)
		}
		sort.Strings(names)
		headers["trailer"] = textOrEmpty(strings.Join(names, ", "))
	}

	// Sorted so that names differing only in case collapse the same way every time.
	keys := make([]string, 0, len(r.Header))
	for key := range r.Header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		values := r.Header[key]
		if len(values) == 0 {
			continue
		}
		headers[strings.ToLower(key)] = textOrEmpty(values[len(values)-1])
	}

	return headers
}

func textOrEmpty(value string) string {
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '\t' && (c < 0x20 || c > 0x7e) {
			return ""
		}
	}
	return value
}
