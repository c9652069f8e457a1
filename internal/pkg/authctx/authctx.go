// Package authctx carries the caller's Authorization header through the
// request context so the backend gateway can forward it verbatim. The
// value is never inspected or validated by this service.
package authctx

import "context"

type ctxKey struct{}

func WithAuthorization(ctx context.Context, header string) context.Context {
	if header == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, header)
}

func Authorization(ctx context.Context) string {
	header, _ := ctx.Value(ctxKey{}).(string)
	return header
}
