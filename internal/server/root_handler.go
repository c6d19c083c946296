package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"certcomply/internal/banner"
)

// ServeHome handles the root "/" route
func (h *Handler) ServeHome(w http.ResponseWriter, r *http.Request) {
	switch h.getOutputFormat(r) {
	case OutputFormatJSON:
		h.writeHomeJSON(w)
	default:
		h.writeHomeANSI(w)
	}
}

func (h *Handler) writeHomeANSI(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	base := h.config.App.BaseURL()

	output := banner.Generate(h.config.App.Name) + "\n"
	output += fmt.Sprintf("\033[1m\033[32m%s\033[0m - TLS Certificate Parameter Compliance\n\n", h.config.App.Name)

	output += "\033[1mUsage:\033[0m\n"
	output += "  curl " + base + "/check/<domain>\n\n"

	output += "\033[1mExamples:\033[0m\n"
	output += "  curl " + base + "/check/example.com\n"
	output += "  curl \"" + base + "/check/test.example.com?days=900&key_type=RSA&key_size=1024\"\n"
	output += "  curl \"" + base + "/check/api.company.com?days=30&key_type=ECC&key_size=256\"\n\n"

	output += "\033[1mParameters (with defaults):\033[0m\n"
	output += "  days=365  key_type=RSA  key_size=2048\n\n"

	output += "\033[1mOutput Formats:\033[0m\n"
	output += "  Text (default): curl " + base + "/check/example.com\n"
	output += "  JSON:           curl \"" + base + "/check/example.com?format=json\"\n"
	output += "  JSON (header):  curl -H \"Accept: application/json\" " + base + "/check/example.com\n\n"

	fmt.Fprint(w, output)
}

func (h *Handler) writeHomeJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")

	base := h.config.App.BaseURL()

	response := map[string]interface{}{
		"name":        h.config.App.Name,
		"description": "TLS Certificate Parameter Compliance",
		"usage":       base + "/check/<domain>",
		"examples": []string{
			base + "/check/example.com",
			base + "/check/test.example.com?days=900&key_type=RSA&key_size=1024",
			base + "/check/api.company.com?days=30&key_type=ECC&key_size=256",
		},
		"defaults": map[string]interface{}{
			"days":     365,
			"key_type": "RSA",
			"key_size": 2048,
		},
		"formats": map[string]string{
			"text": base + "/check/example.com",
			"json": base + "/check/example.com?format=json",
		},
		"cache": map[string]interface{}{
			"mode": string(h.config.Cache.Mode),
			"ttl":  h.config.Cache.TTL.String(),
		},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.Encode(response)
}
