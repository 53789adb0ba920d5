package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/pontocloud/ponto-console/internal/api/metrics"
)

type contextKey struct{}

// WithToken returns a context carrying the bearer token to attach to outbound
// backend requests made under it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(contextKey{}).(string)
	return token
}

// BearerTransport decorates outbound backend requests with the session's
// bearer token. Attachment happens here, once, for every call site that uses
// the client, never per request handler.
type BearerTransport struct {
	Base http.RoundTripper
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	// Per RoundTripper contract the request must not be mutated in place.
	out := req.Clone(req.Context())
	if token := tokenFrom(req.Context()); token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := base.RoundTrip(out)
	metrics.UpstreamRequestDuration.WithLabelValues(out.Method).Observe(time.Since(start).Seconds())
	return resp, err
}
