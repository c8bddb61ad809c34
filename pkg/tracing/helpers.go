package tracing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

const defaultClientTimeout = 30 * time.Second

// StartServiceSpan opens a span named "<service>.<method>"
func StartServiceSpan(ctx context.Context, service, method string) (context.Context, *trace.Span) {
	return trace.StartSpan(ctx, service+"."+method)
}

// EndSpan closes span, flagging it as failed when err is set
func EndSpan(span *trace.Span, err error) {
	if err != nil {
		span.SetStatus(errorStatus(err))
	}
	span.End()
}

// MarkSpanError flags the span in ctx as failed. A nil err or a context
// without span is ignored.
func MarkSpanError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if span := trace.FromContext(ctx); span != nil {
		span.SetStatus(errorStatus(err))
	}
}

func errorStatus(err error) trace.Status {
	return trace.Status{Code: trace.StatusCodeUnknown, Message: err.Error()}
}

// AddAttribute records key on the span in ctx
func AddAttribute(ctx context.Context, key string, value interface{}) {
	if span := trace.FromContext(ctx); span != nil {
		span.AddAttributes(attribute(key, value))
	}
}

func attribute(key string, value interface{}) trace.Attribute {
	switch v := value.(type) {
	case string:
		return trace.StringAttribute(key, v)
	case bool:
		return trace.BoolAttribute(key, v)
	case int:
		return trace.Int64Attribute(key, int64(v))
	case int32:
		return trace.Int64Attribute(key, int64(v))
	case int64:
		return trace.Int64Attribute(key, v)
	case float64:
		return trace.Float64Attribute(key, v)
	case time.Duration:
		return trace.Int64Attribute(key, v.Milliseconds())
	default:
		return trace.StringAttribute(key, fmt.Sprint(v))
	}
}

// WrapHTTPClient returns a copy of client whose requests open a client span
// named after the upstream host, e.g. "GET app.ticketmaster.com".
func WrapHTTPClient(client *http.Client) *http.Client {
	if client == nil {
		client = &http.Client{Timeout: defaultClientTimeout}
	}

	return &http.Client{
		Transport: &ochttp.Transport{
			Base: client.Transport,
			FormatSpanName: func(req *http.Request) string {
				return req.Method + " " + req.URL.Host
			},
		},
		Timeout:       client.Timeout,
		Jar:           client.Jar,
		CheckRedirect: client.CheckRedirect,
	}
}
