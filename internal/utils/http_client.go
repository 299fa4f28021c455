package utils

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client preconfigured for the tracker API: a base
// URL, a per-request timeout and JSON content negotiation.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that resolves relative request URLs against
// baseURL. A zero timeout leaves resty's default (no timeout) in place.
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// RequestWithTrace starts a request bound to ctx. The trace id stored in ctx
// by [WithTraceID], if any, travels in the TraceIDHeader header so the server
// logs the same id as the caller.
func (c *HTTPClient) RequestWithTrace(ctx context.Context) *resty.Request {
	req := c.R().SetContext(ctx)
	if traceID, ok := GetTraceIDFromContext(ctx); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return req
}
