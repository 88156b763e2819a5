// Package httpapi exposes the ledger over a local JSON API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/debtpad/internal/catalog"
	"github.com/alexanderramin/debtpad/internal/service"
	"github.com/gorilla/mux"
)

// Deps are the services the API serves.
type Deps struct {
	Ledger    service.LedgerService
	Platforms service.PlatformService
	Loans     service.LoanService
	Theme     service.ThemeService
	Snapshot  service.SnapshotService
	Catalog   *catalog.Catalog
}

type Server struct {
	deps   Deps
	logger *slog.Logger
	now    func() time.Time
	router *mux.Router
}

func New(deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{deps: deps, logger: logger, now: time.Now}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "no such endpoint")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ledger", s.getLedger).Methods(http.MethodGet)
	api.HandleFunc("/ledger", s.putLedger).Methods(http.MethodPut)
	api.HandleFunc("/dashboard", s.getDashboard).Methods(http.MethodGet)
	api.HandleFunc("/income", s.putIncome).Methods(http.MethodPut)

	api.HandleFunc("/platforms", s.listPlatforms).Methods(http.MethodGet)
	api.HandleFunc("/platforms", s.createPlatform).Methods(http.MethodPost)
	api.HandleFunc("/platforms/{id}", s.updatePlatform).Methods(http.MethodPut)
	api.HandleFunc("/platforms/{id}", s.deletePlatform).Methods(http.MethodDelete)
	api.HandleFunc("/platforms/{id}/loans", s.listLoans).Methods(http.MethodGet)
	api.HandleFunc("/platforms/{id}/loans", s.createLoan).Methods(http.MethodPost)

	api.HandleFunc("/loans/{id}", s.updateLoan).Methods(http.MethodPut)
	api.HandleFunc("/loans/{id}", s.deleteLoan).Methods(http.MethodDelete)

	api.HandleFunc("/theme", s.getTheme).Methods(http.MethodGet)
	api.HandleFunc("/theme/toggle", s.toggleTheme).Methods(http.MethodPost)

	api.HandleFunc("/catalog/{section}", s.getCatalog).Methods(http.MethodGet)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http: %w", err)
		}
		return nil
	}
}
