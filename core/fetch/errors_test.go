package fetch

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Messages(t *testing.T) {
	const u = "https://en.wikipedia.org/api/rest_v1/page/random/summary"
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "transport from client",
			err:  &Error{Kind: KindTransport, URL: u, Err: &url.Error{Op: "Get", URL: u, Err: errors.New("dial tcp: no such host")}},
			want: `transport error: Get "` + u + `": dial tcp: no such host`,
		},
		{
			name: "transport while reading body names the url",
			err:  &Error{Kind: KindTransport, URL: u, Err: io.ErrUnexpectedEOF},
			want: "transport error: " + u + ": unexpected EOF",
		},
		{
			name: "transport without cause",
			err:  &Error{Kind: KindTransport, URL: u},
			want: "transport error: request to " + u + " failed",
		},
		{
			name: "status",
			err:  &Error{Kind: KindHTTPStatus, URL: u, StatusCode: 503, Status: "503 Service Unavailable"},
			want: "http status error: 503 Service Unavailable for url: " + u,
		},
		{
			name: "status code only",
			err:  &Error{Kind: KindHTTPStatus, URL: u, StatusCode: 418},
			want: "http status error: 418 for url: " + u,
		},
		{
			name: "decode",
			err:  &Error{Kind: KindDecode, URL: u, Err: errors.New("unexpected end of JSON input")},
			want: "decode error: invalid JSON from " + u + ": unexpected end of JSON input",
		},
		{
			name: "validation",
			err: &Error{Kind: KindValidation, URL: u, Fields: []FieldError{
				{Field: "title", Problem: "missing required field"},
				{Field: "extract", Problem: "expected string, got number"},
			}},
			want: "validation error: unexpected response from " + u + ": title: missing required field; extract: expected string, got number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsKind(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("fetching page: %w", &Error{Kind: KindDecode, Err: cause})

	assert.True(t, IsKind(err, KindDecode))
	assert.False(t, IsKind(err, KindTransport))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindDecode, KindOf(err))

	assert.False(t, IsKind(cause, KindDecode))
	assert.Equal(t, Kind(0), KindOf(cause))
	assert.Equal(t, "unknown error kind 0", Kind(0).String())
}
