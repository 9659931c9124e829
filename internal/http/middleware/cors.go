package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"

	"github.com/davidbz/pricewise/internal/config"
)

// lastEventIDHeader is sent by EventSource clients when they reconnect to the price stream.
const lastEventIDHeader = "Last-Event-ID"

// CORS lets browser clients call the price API and open the price stream cross-origin.
// Last-Event-ID is always accepted, and the trace headers are readable by scripts.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	allowedHeaders := slices.Clone(cfg.AllowedHeaders)
	if !slices.ContainsFunc(allowedHeaders, func(h string) bool {
		return http.CanonicalHeaderKey(h) == http.CanonicalHeaderKey(lastEventIDHeader)
	}) {
		allowedHeaders = append(allowedHeaders, lastEventIDHeader)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return c.Handler
}
