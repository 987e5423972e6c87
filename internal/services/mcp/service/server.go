package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cscmnu/lmfdb/internal/services/mcp/domain"
	"github.com/cscmnu/lmfdb/internal/services/site/randompath"
	"github.com/cscmnu/lmfdb/internal/services/smf/dimension"
	"github.com/cscmnu/lmfdb/internal/services/smf/family"
	smfsqlite "github.com/cscmnu/lmfdb/internal/services/smf/storage/sqlite"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName = "lmfdb-mcp"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Config holds the MCP server runtime inputs.
type Config struct {
	DBPath string
	Beta   bool
}

// Server hosts the MCP tools over a catalog backed by SQLite.
type Server struct {
	mcpServer *mcp.Server
	store     *smfsqlite.Store
}

// New opens storage and registers the catalog tools.
func New(cfg Config) (*Server, error) {
	dbPath := strings.TrimSpace(cfg.DBPath)
	if dbPath == "" {
		dbPath = filepath.Join("data", "lmfdb.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := smfsqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open smf sqlite store: %w", err)
	}
	picker, err := randompath.NewSelector()
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("seed random selector: %w", err)
	}

	catalog := family.NewCatalog(store, store, dimension.Default())
	return &Server{
		mcpServer: newMCPServer(catalog, picker, cfg.Beta),
		store:     store,
	}, nil
}

func newMCPServer(catalog domain.FamilyCatalog, picker domain.RoutePicker, beta bool) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerTools(server, catalog, picker, beta)
	return server
}

func registerTools(server *mcp.Server, catalog domain.FamilyCatalog, picker domain.RoutePicker, beta bool) {
	mcp.AddTool(server, domain.FamilyListTool(), domain.FamilyListHandler(catalog))
	mcp.AddTool(server, domain.FamilyGetTool(), domain.FamilyGetHandler(catalog))
	mcp.AddTool(server, domain.FamilyDimensionTool(), domain.FamilyDimensionHandler(catalog))
	mcp.AddTool(server, domain.RandomPathTool(), domain.RandomPathHandler(picker, beta))
}

// Run creates an MCP server and serves it over stdio until the context ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the store held by the server.
func (s *Server) Close() error {
	if s == nil || s.store == nil {
		return nil
	}
	if err := s.store.Close(); err != nil {
		return err
	}
	s.store = nil
	return nil
}

// serveWithTransport runs the MCP session and closes the store on exit.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	log.Printf("mcp server serving over %T", transport)
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close store: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close store: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
