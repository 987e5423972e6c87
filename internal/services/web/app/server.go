// Package server wires the web runtime: HTTP pages, gRPC health and storage
// lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cscmnu/lmfdb/internal/platform/timeouts"
	"github.com/cscmnu/lmfdb/internal/services/smf/dimension"
	"github.com/cscmnu/lmfdb/internal/services/smf/family"
	smfsqlite "github.com/cscmnu/lmfdb/internal/services/smf/storage/sqlite"
	"github.com/cscmnu/lmfdb/internal/services/web"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService is the gRPC health service name reported for the web surface.
const HealthService = "lmfdb.web"

// Config holds the runtime inputs for the web server.
type Config struct {
	HTTPAddr string
	// HealthAddr is the gRPC health listen address. Empty disables it.
	HealthAddr string
	DBPath     string
	Beta       bool
}

// Server hosts the web handler, the gRPC health endpoint and the store.
type Server struct {
	httpListener   net.Listener
	httpServer     *http.Server
	healthListener net.Listener
	grpcServer     *grpc.Server
	health         *health.Server
	store          *smfsqlite.Store
}

// New opens storage and binds the listeners described by cfg.
func New(cfg Config) (*Server, error) {
	dbPath := strings.TrimSpace(cfg.DBPath)
	if dbPath == "" {
		dbPath = filepath.Join("data", "lmfdb.db")
	}
	store, err := openStore(dbPath)
	if err != nil {
		return nil, err
	}

	handler, err := web.NewHandler(web.Config{
		Catalog: family.NewCatalog(store, store, dimension.Default()),
		Beta:    cfg.Beta,
	})
	if err != nil {
		closeStore(store)
		return nil, fmt.Errorf("build handler: %w", err)
	}

	httpListener, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		closeStore(store)
		return nil, fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
	}
	s := &Server{
		httpListener: httpListener,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store: store,
	}

	if addr := strings.TrimSpace(cfg.HealthAddr); addr != "" {
		healthListener, err := net.Listen("tcp", addr)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("listen on %s: %w", addr, err)
		}
		s.healthListener = healthListener
		s.grpcServer = grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
		s.health = health.NewServer()
		grpc_health_v1.RegisterHealthServer(s.grpcServer, s.health)
		s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		s.health.SetServingStatus(HealthService, grpc_health_v1.HealthCheckResponse_SERVING)
	}
	return s, nil
}

// HTTPAddr returns the HTTP listener address.
func (s *Server) HTTPAddr() string {
	if s == nil || s.httpListener == nil {
		return ""
	}
	return s.httpListener.Addr().String()
}

// HealthAddr returns the gRPC health listener address, or "" when disabled.
func (s *Server) HealthAddr() string {
	if s == nil || s.healthListener == nil {
		return ""
	}
	return s.healthListener.Addr().String()
}

// Run creates and serves a web server until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve runs the HTTP and health servers until the context ends or either
// server fails.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	defer s.Close()

	errs := make(chan error, 2)
	running := 1
	log.Printf("web server listening at %v", s.httpListener.Addr())
	go func() {
		err := s.httpServer.Serve(s.httpListener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		if err != nil {
			err = fmt.Errorf("serve http: %w", err)
		}
		errs <- err
	}()
	if s.grpcServer != nil {
		running++
		log.Printf("health server listening at %v", s.healthListener.Addr())
		go func() {
			err := s.grpcServer.Serve(s.healthListener)
			if errors.Is(err, grpc.ErrServerStopped) {
				err = nil
			}
			if err != nil {
				err = fmt.Errorf("serve gRPC: %w", err)
			}
			errs <- err
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errs:
		running--
	}

	if s.health != nil {
		s.health.Shutdown()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && serveErr == nil {
		serveErr = fmt.Errorf("shutdown http server: %w", err)
	}
	cancel()
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
	for ; running > 0; running-- {
		if err := <-errs; err != nil && serveErr == nil {
			serveErr = err
		}
	}
	return serveErr
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.healthListener != nil {
		_ = s.healthListener.Close()
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.httpListener != nil {
		_ = s.httpListener.Close()
	}
	if s.store != nil {
		closeStore(s.store)
		s.store = nil
	}
}

func openStore(path string) (*smfsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := smfsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open smf sqlite store: %w", err)
	}
	return store, nil
}

func closeStore(store *smfsqlite.Store) {
	if err := store.Close(); err != nil {
		log.Printf("close smf store: %v", err)
	}
}
