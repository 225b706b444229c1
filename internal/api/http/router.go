package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jekabolt/helpdesk/internal/middleware"
)

const defaultRequestTimeout = 30 * time.Second

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	cors := cors.New(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		OptionsPassthrough: true,
	})

	timeout := s.c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r.Use(cors.Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientIdentifier)
	r.Use(logRequests)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(timeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/", s.getForm)
	r.Post("/submit-ticket", s.submitTicket)
	r.Get("/success", s.getSuccess)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/", s.getDashboard)
		r.Route("/tickets/{id}", func(sr chi.Router) {
			sr.Get("/", s.getTicket)
			sr.Post("/status", s.updateStatus)
		})
	})

	return r
}

// logRequests writes one line per request once the response is done.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		slog.Default().InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("client_ip", middleware.GetClientIP(r.Context())),
		)
	})
}
