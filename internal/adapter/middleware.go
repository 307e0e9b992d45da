// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID gives every request a trace id unless it already carries one.
func (g *GatewayAdapter) withTraceID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(traceIDHeader) == "" {
		r.SetHeader(traceIDHeader, g.ids.Generate())
	}
	return nil
}

// withLogging logs every completed request.
func (g *GatewayAdapter) withLogging(_ *resty.Client, resp *resty.Response) error {
	g.logger.Debug().
		Str("func", "GatewayAdapter.withLogging").
		Str("trace_id", resp.Request.Header.Get(traceIDHeader)).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int64("size", resp.Size()).
		Send()
	return nil
}
