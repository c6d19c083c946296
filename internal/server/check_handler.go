package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"certcomply/internal/renderer"
	"certcomply/pkg/models"
)

// ServeCheck handles "/check/{domain}". Query parameters days, key_type and
// key_size fall back to the documented defaults when absent.
func (h *Handler) ServeCheck(w http.ResponseWriter, r *http.Request) {
	domain := extractDomain(r.URL.Path)
	if domain == "" {
		http.Error(w, "No domain specified", http.StatusBadRequest)
		return
	}

	query := r.URL.Query()

	days := 0
	if raw := query.Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid days parameter: must be a positive integer", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	keySize := 0
	if raw := query.Get("key_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid key_size parameter: must be a positive integer", http.StatusBadRequest)
			return
		}
		keySize = parsed
	}

	req := models.NewCertificateRequest(domain, days, query.Get("key_type"), keySize)
	format := h.getOutputFormat(r)

	// Read-through cache keyed by the full request fingerprint
	key := req.Fingerprint()
	if cached, found := h.cache.Get(key); found {
		h.writeResponse(w, cached, format)
		return
	}

	report, err := h.evaluator.Evaluate(req)
	if err != nil {
		// The evaluator still produced a degraded report; render it so the
		// caller never goes without a structured result.
		h.logger.Error("evaluation failed",
			slog.String("domain", req.Domain),
			slog.String("error", err.Error()))
		if report == nil {
			http.Error(w, "Evaluation failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		h.writeResponseStatus(w, report, format, http.StatusInternalServerError)
		return
	}

	h.cache.Set(key, report)
	h.writeResponse(w, report, format)
}

func (h *Handler) writeResponse(w http.ResponseWriter, report *models.ComplianceReport, format OutputFormat) {
	h.writeResponseStatus(w, report, format, http.StatusOK)
}

func (h *Handler) writeResponseStatus(w http.ResponseWriter, report *models.ComplianceReport, format OutputFormat, status int) {
	var rend renderer.Renderer
	switch format {
	case OutputFormatJSON:
		w.Header().Set("Content-Type", "application/json")
		rend = h.jsonRenderer
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		rend = h.ansiRenderer
	}

	w.WriteHeader(status)

	if err := rend.Render(w, report); err != nil {
		h.logger.Error("failed to render response", slog.String("error", err.Error()))
	}
}
