package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/miekg/dns"

	"certcomply/internal/cache"
	"certcomply/internal/config"
	"certcomply/internal/logger"
	"certcomply/internal/registry"
	"certcomply/internal/renderer"
	"certcomply/pkg/models"
)

// Evaluator is the slice of the policy evaluator the handler needs.
type Evaluator interface {
	Evaluate(req models.CertificateRequest) (*models.ComplianceReport, error)
}

type Handler struct {
	evaluator    Evaluator
	cache        cache.Store
	jsonRenderer renderer.Renderer
	ansiRenderer renderer.Renderer
	config       *config.Config
	logger       *slog.Logger
}

// NewHandler wires the handler from configuration, resolving the compliance
// evaluator through the registry.
func NewHandler(cfg *config.Config, reg *registry.Registry) (*Handler, error) {
	log := logger.Get()

	evaluator, err := reg.Get(registry.DefaultName)
	if err != nil {
		return nil, err
	}

	var store cache.Store
	switch cfg.Cache.Mode {
	case config.CacheModeMem:
		store = cache.NewMemoryStore(cfg.Cache.TTL)
		log.Info("cache initialized",
			slog.String("mode", "memory"),
			slog.Duration("ttl", cfg.Cache.TTL))
	case config.CacheModeNone:
		store = cache.NewNoOpStore()
		log.Info("cache initialized",
			slog.String("mode", "none"))
	default:
		store = cache.NewNoOpStore()
		log.Warn("unknown cache mode, using no-op",
			slog.String("mode", string(cfg.Cache.Mode)))
	}

	return &Handler{
		evaluator:    evaluator,
		cache:        store,
		jsonRenderer: renderer.NewJSONRenderer(),
		ansiRenderer: renderer.NewANSIRenderer(),
		config:       cfg,
		logger:       log,
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case isRootPath(path):
		h.ServeHome(w, r)
	case isHealthPath(path):
		h.ServeHealth(w, r)
	case isCheckPath(path):
		h.ServeCheck(w, r)
	default:
		http.NotFound(w, r)
	}
}

type OutputFormat int

const (
	OutputFormatANSI OutputFormat = iota
	OutputFormatJSON
)

func (f OutputFormat) String() string {
	switch f {
	case OutputFormatANSI:
		return "ansi"
	case OutputFormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

func (h *Handler) getOutputFormat(r *http.Request) OutputFormat {
	if r.URL.Query().Get("format") == "json" {
		return OutputFormatJSON
	}

	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "application/json") {
		return OutputFormatJSON
	}

	return OutputFormatANSI
}

func isRootPath(path string) bool {
	return path == "/"
}

func isHealthPath(path string) bool {
	return path == "/health"
}

func isCheckPath(path string) bool {
	domain := extractDomain(path)
	if domain == "" {
		return strings.HasPrefix(path, "/check")
	}
	// A wildcard prefix is legal input; the evaluator assesses it.
	_, ok := dns.IsDomainName(strings.TrimPrefix(domain, "*."))
	return ok
}

// extractDomain pulls the domain out of a "/check/{domain}" path.
func extractDomain(path string) string {
	if !strings.HasPrefix(path, "/check/") {
		return ""
	}
	return strings.TrimPrefix(path, "/check/")
}
