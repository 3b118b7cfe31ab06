package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"flavours/config"
	"flavours/shared/constant"
	"flavours/shared/failure"
	"flavours/transport/http/response"

	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type AppMiddleware interface {
	Logging(next http.Handler) http.Handler
	Recover(next http.Handler) http.Handler
	CORS(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
	AdminKey(next http.Handler) http.Handler
}

type appMiddleware struct {
	config  *config.Config
	limiter *rate.Limiter
}

func NewAppMiddleware(config *config.Config) AppMiddleware {
	limiterConfig := config.App.RateLimiter

	window := limiterConfig.WindowSeconds
	if window <= 0 {
		window = 1
	}

	return &appMiddleware{
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(float64(limiterConfig.MaxRequests)/float64(window)), limiterConfig.MaxRequests),
	}
}

// Logging emits one structured log line per request.
func (a *appMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(recorder, request)

		log.Info().
			Str("method", request.Method).
			Str("path", request.URL.Path).
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Str("source", request.RemoteAddr).
			Msg("request handled")
	})
}

// Recover turns an unhandled panic anywhere in the pipeline into an opaque
// internal-error response instead of tearing down the connection.
func (a *appMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("path", request.URL.Path).
					Msg("recovered from panic while handling request")

				// A plain error keeps the response masked; the panic value
				// goes to the log only.
				response.WithError(writer, fmt.Errorf("panic: %v", rec))
			}
		}()

		next.ServeHTTP(writer, request)
	})
}

func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	corsConfig := a.config.App.CORS

	if !corsConfig.Enable {
		return next
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	})(next)
}

// RateLimit applies a process-wide token bucket sized from configuration.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	if !a.config.App.RateLimiter.Enable {
		return next
	}

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !a.limiter.Allow() {
			response.WithRequestLimitExceeded(writer)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// AdminKey guards operator-only routes with a static API key. When no key is
// configured the guard is disabled, which keeps local development friction-free.
func (a *appMiddleware) AdminKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		key := a.config.App.AdminAPIKey
		if key == "" {
			next.ServeHTTP(writer, request)

			return
		}

		provided := request.Header.Get(constant.RequestHeaderAdminAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			response.WithError(writer, failure.Unauthorized("invalid or missing API key"))

			return
		}

		next.ServeHTTP(writer, request)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
