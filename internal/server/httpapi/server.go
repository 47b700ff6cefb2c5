// Package httpapi exposes the JSON HTTP API: auth endpoints, the
// token-guarded QR record endpoints, and a single error boundary.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/qrkeeper/qrkeeper/internal/logging"
	"github.com/qrkeeper/qrkeeper/internal/server/models"
)

// Image payloads travel inline as data URLs, so request bodies get large.
const maxBodySize = 50 << 20

// UserService is the authentication surface the API needs.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ForgotPassword(ctx context.Context, email string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// QRService is the record surface the API needs.
type QRService interface {
	List(ctx context.Context, userID string) ([]*models.QRCode, error)
	Create(ctx context.Context, userID, content, image, logo string) (*models.QRCode, error)
	Delete(ctx context.Context, userID, id string) error
}

type HTTPServer struct {
	address    string
	logger     logging.Logger
	users      UserService
	qrs        QRService
	jwtSecret  []byte
	production bool
}

func NewHTTPServer(a string, l logging.Logger, us UserService, qs QRService, secretKey string, production bool) *HTTPServer {
	return &HTTPServer{
		address:    a,
		logger:     l.With("module", "http_server"),
		users:      us,
		qrs:        qs,
		jwtSecret:  []byte(secretKey),
		production: production,
	}
}

func (s *HTTPServer) router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.RequestSize(maxBodySize))
	r.Use(s.recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", s.handlePing)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/forgot-password", s.handleForgotPassword)
		})

		r.Route("/qr", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListQRs)
			r.Post("/", s.handleCreateQR)
			r.Delete("/{id}", s.handleDeleteQR)
		})
	})

	return r
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
