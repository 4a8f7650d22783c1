package menu

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mchmarny/sitenav/pkg/nav"
	"github.com/mchmarny/sitenav/pkg/render"
)

// PreviewPrefix is prepended to effective link paths by the preview endpoint.
const PreviewPrefix = "/preview"

// RegisterHandlers registers every menu endpoint with the server.
func (m *Menu) RegisterHandlers(register func(pattern string, handler http.Handler)) {
	for _, ep := range m.endpoints() {
		register(ep.pattern, m.count(ep.name, ep.handler))
	}
}

// Endpoints lists the paths served by Run.
var Endpoints = []string{"/", "/navbar.json", "/navbar.ts", "/links", "/lint", PreviewPrefix + "/", "/healthz", "/metrics"}

type endpoint struct {
	name    string
	pattern string
	handler http.Handler
}

func (m *Menu) endpoints() []endpoint {
	return []endpoint{
		{"index", "GET /{$}", m.Handler()},
		{"navbar.json", "GET /navbar.json", m.withBuild(m.serveJSON)},
		{"navbar.ts", "GET /navbar.ts", m.withBuild(m.serveTS)},
		{"links", "GET /links", m.withBuild(m.serveLinks)},
		{"lint", "GET /lint", m.withBuild(m.serveFindings)},
		{"preview", "GET " + PreviewPrefix + "/", m.withBuild(m.servePreview)},
	}
}

func (m *Menu) count(name string, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requests.Increment(name)
		h.ServeHTTP(w, r)
	})
}

// withBuild answers 503 until the first build succeeded.
func (m *Menu) withBuild(fn func(http.ResponseWriter, *http.Request, *Build)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := m.Current()
		if b == nil {
			writeError(w, http.StatusServiceUnavailable, ErrNotBuilt.Error())
			return
		}
		w.Header().Set("X-Navbar-Build", b.ID)
		fn(w, r, b)
	})
}

// Handler returns an HTTP handler that responds with the menu index as JSON.
func (m *Menu) Handler() http.Handler {
	return m.withBuild(func(w http.ResponseWriter, _ *http.Request, b *Build) {
		idx := Index{
			Title:       m.opts.Title,
			Description: m.opts.Description,
			Version:     m.opts.Version,
			BuildID:     b.ID,
			BuiltAt:     b.BuiltAt,
			Source:      b.Source,
			Nodes:       b.Navbar.Len(),
			Links:       len(b.Navbar.Links()),
			Findings:    len(b.Findings),
			Endpoints:   Endpoints,
		}
		writeJSON(w, http.StatusOK, idx)
	})
}

func (m *Menu) serveJSON(w http.ResponseWriter, _ *http.Request, b *Build) {
	writeJSON(w, http.StatusOK, b.Navbar)
}

func (m *Menu) serveTS(w http.ResponseWriter, _ *http.Request, b *Build) {
	var buf bytes.Buffer
	if err := render.TypeScript(&buf, b.Navbar, m.opts.Framework); err != nil {
		slog.Error("failed to render navbar module", "error", err)
		writeError(w, http.StatusInternalServerError, "error, see logs for details")
		return
	}

	w.Header().Set("Content-Type", "text/typescript; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (m *Menu) serveLinks(w http.ResponseWriter, _ *http.Request, b *Build) {
	writeJSON(w, http.StatusOK, itemsFrom(b.Navbar.Links()))
}

func (m *Menu) serveFindings(w http.ResponseWriter, _ *http.Request, b *Build) {
	findings := b.Findings
	if findings == nil {
		findings = nav.Findings{}
	}
	writeJSON(w, http.StatusOK, findings)
}

// servePreview resolves /preview/<effective path> to the link item it belongs to.
func (m *Menu) servePreview(w http.ResponseWriter, r *http.Request, b *Build) {
	path := strings.TrimPrefix(r.URL.Path, PreviewPrefix)

	for _, it := range itemsFrom(b.Navbar.Links()) {
		if it.Path == path {
			writeJSON(w, http.StatusOK, it)
			return
		}
	}

	writeError(w, http.StatusNotFound, "no navbar link for "+path)
}

func writeError(w http.ResponseWriter, status int, message string) {
	slog.Debug("handling error response",
		"status", status,
		"message", message,
	)
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}
