package handler

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/payloadkit/pkg/rule"
)

// ContextResolver supplies the auto-populate context for a request.
type ContextResolver func(r *http.Request) rule.Context

type ruleContextKey struct{}

// WithRuleContext stores rc in ctx for the default resolver.
// Authentication middleware uses it to expose the current user.
func WithRuleContext(ctx context.Context, rc rule.Context) context.Context {
	return context.WithValue(ctx, ruleContextKey{}, rc)
}

// RuleContext returns the rule.Context stored in the request,
// or an empty one.
func RuleContext(r *http.Request) rule.Context {
	if rc, ok := r.Context().Value(ruleContextKey{}).(rule.Context); ok && rc != nil {
		return rc
	}
	return rule.Values{}
}

// HeaderContext resolves accessor keys from request headers.
// headers maps an accessor key to a header name; absent or empty headers
// leave the key unresolved.
func HeaderContext(headers map[string]string) ContextResolver {
	return func(r *http.Request) rule.Context {
		return rule.ContextFunc(func(key string) (any, bool) {
			name, ok := headers[key]
			if !ok {
				return nil, false
			}
			v := r.Header.Get(name)
			return v, v != ""
		})
	}
}
