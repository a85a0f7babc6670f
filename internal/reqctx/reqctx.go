// internal/reqctx/reqctx.go
package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keyRoute
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

// WithRoute хранит шаблон маршрута mux (например /articles/{id}) для логов и метрик.
func WithRoute(ctx context.Context, tpl string) context.Context {
	return context.WithValue(ctx, keyRoute, tpl)
}

func GetRoute(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRoute).(string)
	return v, ok
}
