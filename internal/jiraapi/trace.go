package jiraapi

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// traceTransport writes one line per HTTP round trip to w. It is only
// installed when debug logging is enabled.
type traceTransport struct {
	next http.RoundTripper
	w    io.Writer
}

func (t *traceTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		fmt.Fprintf(t.w, "%s %s error: %v\n", req.Method, req.URL.Path, err)
		return resp, err
	}
	fmt.Fprintf(t.w, "%s %s %s %s\n", req.Method, req.URL.Path, resp.Status, time.Since(start).Round(time.Millisecond))
	return resp, err
}
