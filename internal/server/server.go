// Package server provides the HTTP REST API for the skill-gap engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonsiu/career-os-sub001/internal/analytics"
	"github.com/jonsiu/career-os-sub001/internal/cache"
	"github.com/jonsiu/career-os-sub001/internal/config"
	"github.com/jonsiu/career-os-sub001/internal/coursesearch"
	"github.com/jonsiu/career-os-sub001/internal/db"
	"github.com/jonsiu/career-os-sub001/internal/recommend"
	"github.com/jonsiu/career-os-sub001/internal/taxonomy"
	"github.com/jonsiu/career-os-sub001/internal/types"
)

// Store is the persistence surface the server needs. *db.DB satisfies it; a
// nil Store runs the server stateless (no history, no saved analyses).
type Store interface {
	SaveAnalysis(ctx context.Context, analysis *types.Analysis) (uuid.UUID, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error)
	ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]types.Analysis, error)
	SkillRecords(ctx context.Context, userID uuid.UUID) ([]types.SkillRecord, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	store       Store
	taxonomy    taxonomy.Provider
	recommender *recommend.Service
	sink        analytics.Sink
	weeklyHours float64
	closers     []func()
}

// New wires a server from configuration: database, taxonomy provider with a
// TTL cache, course-search providers, and the click sink.
func New(cfg *config.Config) (*Server, error) {
	var store Store
	var closers []func()
	var database *db.DB

	if cfg.DatabaseURL != "" {
		var err error
		database, err = db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store = database
		closers = append(closers, database.Close)
	}

	var provider taxonomy.Provider
	if cfg.TaxonomyPath != "" {
		fileProvider, err := taxonomy.NewFileProvider(cfg.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load taxonomy: %w", err)
		}
		ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute
		provider = taxonomy.NewCachedProvider(fileProvider, cache.NewTTL[string, []types.RoleSkill](ttl))
	}

	searchProviders, err := coursesearch.NewAll(cfg.CourseProviders)
	if err != nil {
		return nil, fmt.Errorf("failed to build course providers: %w", err)
	}

	sink, err := analytics.New(cfg.ClickSink, database)
	if err != nil {
		return nil, fmt.Errorf("failed to build click sink: %w", err)
	}
	closers = append(closers, func() { _ = sink.Close() })

	s := newServer(store, provider, recommend.NewService(searchProviders), sink, cfg.WeeklyHours)
	s.closers = closers
	s.httpServer.Addr = fmt.Sprintf(":%d", cfg.Port)
	return s, nil
}

// newServer assembles routes and middleware around explicit dependencies.
// Tests construct servers through this path with fakes.
func newServer(store Store, provider taxonomy.Provider, recommender *recommend.Service, sink analytics.Sink, weeklyHours float64) *Server {
	s := &Server{
		store:       store,
		taxonomy:    provider,
		recommender: recommender,
		sink:        sink,
		weeklyHours: weeklyHours,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyses", s.handleCreateAnalysis)
	mux.HandleFunc("GET /analyses/{id}", s.handleGetAnalysis)
	mux.HandleFunc("GET /analyses/{id}/roadmap", s.handleGetRoadmap)
	mux.HandleFunc("GET /analyses/{id}/recommendations", s.handleGetRecommendations)
	mux.HandleFunc("GET /users/{id}/analyses", s.handleListAnalyses)
	mux.HandleFunc("POST /clicks", s.handleTrackClick)
	mux.HandleFunc("GET /disclosure", s.handleDisclosure)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	for _, closeFn := range s.closers {
		closeFn()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
