package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync/atomic"
	"time"
)

// Context key type stays unexported so callers go through the helpers.
type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info carries tracing state for one HTTP request.
// RequestID is unique per request; spanSeq increments 1,2,3,... for each
// outbound call made while serving that request.
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID generates a random id for tracing.
func GenerateID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// timestamp fallback keeps tracing usable if rand fails
		return time.Now().UTC().Format("20060102T150405.000000000")
	}
	return hex.EncodeToString(b[:])
}

// WithRequestAndSpan returns a context carrying the request id and an initial
// span value (normally 0).
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext returns the request id stored in ctx, if any.
func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID returns the current span sequence value without advancing it.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID advances the span sequence for the request and returns
// (requestID, spanID). Outside the middleware a fresh request id is minted.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		reqID := GenerateID()
		return reqID, "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}
