package middleware

import "net/http"

// Chain wraps h so the middlewares run in the order given:
//
//	handler := Chain(mux,
//	    metrics.Middleware, // outermost
//	    RequestLogging,
//	    CORS(origins),      // closest to the mux
//	)
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Route composes per-route guards around a handler, first guard outermost.
func Route(h http.HandlerFunc, guards ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	for i := len(guards) - 1; i >= 0; i-- {
		h = guards[i](h)
	}
	return h
}
