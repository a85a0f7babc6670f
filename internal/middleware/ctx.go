package middleware

import (
	"net/http"

	"crossblog/internal/reqctx"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const HeaderRequestID = "X-Request-ID"

// RequestID берёт X-Request-ID клиента или генерирует новый и кладёт его в контекст и ответ.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(HeaderRequestID)
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, rid)

		ctx := reqctx.WithRequestID(r.Context(), rid)
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				ctx = reqctx.WithRoute(ctx, tpl)
			}
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// routeOf: шаблон маршрута без кардинальности id; для несматченных запросов "unmatched".
func routeOf(r *http.Request) string {
	if tpl, ok := reqctx.GetRoute(r.Context()); ok {
		return tpl
	}
	return "unmatched"
}
