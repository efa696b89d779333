package client

import (
	"context"
)

type ctxKey struct{}

// NewContext returns a copy of ctx carrying the application instance.
func NewContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

// FromContext extracts the application instance, nil if absent.
func FromContext(ctx context.Context) *App {
	app, _ := ctx.Value(ctxKey{}).(*App)
	return app
}
