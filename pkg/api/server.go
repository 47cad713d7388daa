package api

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mineworks/grindflow/pkg/catalog"
	"github.com/mineworks/grindflow/pkg/flowsheet"
	"github.com/mineworks/grindflow/pkg/kpi"
	"github.com/mineworks/grindflow/pkg/logging"
	"github.com/mineworks/grindflow/pkg/metrics"
	"github.com/mineworks/grindflow/pkg/simrun"
)

// session is one in-memory flowsheet editing session. The graph is owned by
// exactly one editor; the tracker discards simulation responses that lost
// the race against a newer submission.
type session struct {
	graph   *flowsheet.Graph
	tracker simrun.Tracker
}

// Server represents the HTTP API server
type Server struct {
	catalog   *catalog.Registry
	kpiReg    *kpi.Registry
	goalStore kpi.GoalStore
	sim       *simrun.Client
	metrics   *metrics.Registry
	logger    logging.Logger
	startTime time.Time
	version   string
	port      int

	mu       sync.Mutex
	sessions map[string]*session
}

// NewServer creates a new API server
func NewServer(cfg Config, cat *catalog.Registry, kpiReg *kpi.Registry, goalStore kpi.GoalStore, sim *simrun.Client, m *metrics.Registry, logger logging.Logger) *Server {
	return &Server{
		catalog:   cat,
		kpiReg:    kpiReg,
		goalStore: goalStore,
		sim:       sim,
		metrics:   m,
		logger:    logger,
		startTime: time.Now(),
		version:   "1.0.0",
		port:      cfg.Port,
		sessions:  make(map[string]*session),
	}
}

// Handler builds the routed handler with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health and metrics
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.Prometheus(), promhttp.HandlerOpts{}))

	// Equipment catalog
	mux.HandleFunc("GET /catalog", s.handleCatalog)

	// Flowsheet editing sessions
	mux.HandleFunc("POST /flowsheets", s.handleCreateFlowsheet)
	mux.HandleFunc("GET /flowsheets/{id}", s.handleGetFlowsheet)
	mux.HandleFunc("POST /flowsheets/{id}/nodes", s.handleAddNode)
	mux.HandleFunc("DELETE /flowsheets/{id}/nodes/{nodeId}", s.handleRemoveNode)
	mux.HandleFunc("POST /flowsheets/{id}/edges", s.handleConnect)
	mux.HandleFunc("POST /flowsheets/{id}/parameters", s.handleSetParameter)
	mux.HandleFunc("GET /flowsheets/{id}/validate", s.handleValidate)
	mux.HandleFunc("POST /flowsheets/{id}/submit", s.handleSubmit)

	// Goal overrides
	mux.HandleFunc("GET /goals", s.handleLoadGoals)
	mux.HandleFunc("PUT /goals", s.handleSaveGoals)

	// Scenario comparison
	mux.HandleFunc("POST /compare", s.handleCompare)

	// PSD utilities
	mux.HandleFunc("POST /psd/resample", s.handleResample)
	mux.HandleFunc("POST /psd/percentile", s.handlePercentile)

	return s.loggingMiddleware(s.corsMiddleware(s.metricsMiddleware(mux)))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("grindflow API server starting",
		logging.String("addr", addr),
		logging.String("version", s.version))

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   s.version,
		Uptime:    time.Since(s.startTime).String(),
	})
}

// getSession returns the editing session for a flowsheet id.
func (s *Server) getSession(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) putSession(id string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}
