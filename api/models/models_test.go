package models

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFromRequest_LowercasesNames(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Test", "abc")
	req.Header.Set("Accept", "*/*")

	headers := FromRequest(req)

	if headers["x-test"] != "abc" {
		t.Errorf("Expected x-test=abc, got %q", headers["x-test"])
	}
	if headers["accept"] != "*/*" {
		t.Errorf("Expected accept=*/*, got %q", headers["accept"])
	}
	if _, ok := headers["X-Test"]; ok {
		t.Error("Expected canonical key to be lowercased")
	}
}

func TestFromRequest_IncludesHost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com:3000/ping", nil)

	headers := FromRequest(req)

	if headers["host"] != "example.com:3000" {
		t.Errorf("Expected host=example.com:3000, got %q", headers["host"])
	}
	if len(headers) != 1 {
		t.Errorf("Expected only the host key, got %v", headers)
	}
}

func TestFromRequest_LastValueWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Add("X-Dup", "first")
	req.Header.Add("X-Dup", "second")
	req.Header.Add("X-Dup", "third")

	headers := FromRequest(req)

	if headers["x-dup"] != "third" {
		t.Errorf("Expected x-dup=third, got %q", headers["x-dup"])
	}
}

func TestFromRequest_InvalidTextBecomesEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain ascii", value: "hello world", want: "hello world"},
		{name: "tab allowed", value: "a\tb", want: "a\tb"},
		{name: "utf8", value: "café", want: ""},
		{name: "raw high byte", value: "a\xffb", want: ""},
		{name: "control char", value: "a\x01b", want: ""},
		{name: "delete", value: "a\x7fb", want: ""},
		{name: "empty", value: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header["X-Value"] = []string{tt.value}
			req.Header.Set("X-Other", "kept")

			headers := FromRequest(req)

			got, ok := headers["x-value"]
			if !ok {
				t.Fatal("Expected x-value key to be present")
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if headers["x-other"] != "kept" {
				t.Errorf("Expected other headers to survive, got %q", headers["x-other"])
			}
		})
	}
}

func TestFromRequest_RestoresLiftedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://x/ping", nil)
	req.TransferEncoding = []string{"chunked"}
	req.Trailer = http.Header{"X-Sum": nil, "Expires": nil}

	headers := FromRequest(req)

	if headers["transfer-encoding"] != "chunked" {
		t.Errorf("Expected transfer-encoding=chunked, got %q", headers["transfer-encoding"])
	}
	if headers["trailer"] != "Expires, X-Sum" {
		t.Errorf("Expected trailer=\"Expires, X-Sum\", got %q", headers["trailer"])
	}
	if headers["host"] != "x" {
		t.Errorf("Expected host=x, got %q", headers["host"])
	}
}
