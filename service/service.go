package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/ethereum-optimism/infra/op-teststats/metrics"
	"github.com/ethereum-optimism/infra/op-teststats/reporting"
	"github.com/ethereum/go-ethereum/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// ReportSource renders the reports of a session on demand
type ReportSource interface {
	Generate(name string) (string, error)
	Records() []reporting.Record
}

// Server serves healthz, metrics and session reports over HTTP
type Server struct {
	addr     string
	reports  ReportSource
	log      log.Logger
	server   *http.Server
	listener net.Listener
}

// NewServer creates a server that will listen on addr
func NewServer(addr string, reports ReportSource, logger log.Logger) *Server {
	if logger == nil {
		logger = log.New()
	}
	return &Server{
		addr:    addr,
		reports: reports,
		log:     logger,
	}
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/reports/{name}", s.handleReport).Methods(http.MethodGet)
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
	})
	return c.Handler(router)
}

// Start listens on the configured address and serves in the background
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = listener
	s.server = &http.Server{Handler: s.Handler()}

	s.log.Info("starting report server", "addr", listener.Addr().String())
	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("error running report server", "err", err)
			metrics.RecordErrorDetails("report_server", err)
		}
	}()
	return nil
}

// Addr returns the address the server listens on, once started
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.log.Info("report server shutting down")
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.log.Debug("Received health check request", "path", r.URL.Path)
	w.Write([]byte("OK")) //nolint:errcheck
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if name == reporting.ReportJSON {
		data, err := reporting.MarshalRecords(s.reports.Records())
		if err != nil {
			s.log.Error("failed to encode records", "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data) //nolint:errcheck
		return
	}

	if !isReportName(name) {
		http.NotFound(w, r)
		return
	}
	content, err := s.reports.Generate(name)
	if err != nil {
		s.log.Error("failed to generate report", "report", name, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(content)) //nolint:errcheck
}

func isReportName(name string) bool {
	for _, n := range reporting.ReportNames {
		if n == name {
			return true
		}
	}
	return false
}
