// Package web serves the date and time validators over HTTP, plus the docs
// pages rendered as HTML.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"datepicker/internal/config"
	"datepicker/internal/datefield"
	"datepicker/internal/docs"
	"datepicker/internal/format"
	"datepicker/internal/locale"
	"datepicker/internal/timefield"

	"golang.org/x/text/language"
)

//go:embed templates/*.html
var assetsFS embed.FS

type ServerConfig struct {
	Addr string

	// Config supplies the pattern overrides, range limits and default locale.
	Config *config.Config

	Logger *slog.Logger
}

type Server struct {
	mu   sync.RWMutex
	cfg  ServerConfig
	tmpl *template.Template

	// fields caches per-locale validators; settings are immutable once built.
	fields map[string]*localeFields
}

type localeFields struct {
	date *datefield.Validator
	time *timefield.Settings
}

func NewServer(cfg ServerConfig) (*Server, error) {
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	if cfg.Addr == "" {
		return nil, errors.New("web: addr is empty")
	}
	if cfg.Config == nil {
		cfg.Config = &config.Config{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if err := cfg.Config.Validate(); err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}

	tmpl, err := template.New("base").ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, tmpl: tmpl, fields: map[string]*localeFields{}}, nil
}

func (s *Server) Addr() string { return s.cfg.Addr }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/parse", s.handleParse)
	mux.HandleFunc("GET /api/time", s.handleTime)
	mux.HandleFunc("GET /api/formats", s.handleFormats)
	mux.HandleFunc("GET /docs", s.handleDocsIndex)
	mux.HandleFunc("GET /docs/{topic}", s.handleDoc)
	return s.logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.cfg.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// localeFor picks ?locale=, then Accept-Language, then the configured locale.
func (s *Server) localeFor(r *http.Request) locale.Locale {
	if q := strings.TrimSpace(r.URL.Query().Get("locale")); q != "" {
		loc, _ := locale.Match(q)
		return loc
	}
	if h := r.Header.Get("Accept-Language"); h != "" {
		tags, _, err := language.ParseAcceptLanguage(h)
		if err == nil {
			for _, t := range tags {
				if loc, ok := locale.Match(t.String()); ok {
					return loc
				}
			}
		}
	}
	return locale.Lookup(s.cfg.Config.Locale)
}

func (s *Server) fieldsFor(loc locale.Locale) (*localeFields, error) {
	key := loc.String()
	s.mu.RLock()
	f := s.fields[key]
	s.mu.RUnlock()
	if f != nil {
		return f, nil
	}

	ds, err := s.cfg.Config.DateSettings(loc)
	if err != nil {
		return nil, err
	}
	ts, err := s.cfg.Config.TimeSettings(loc)
	if err != nil {
		return nil, err
	}
	f = &localeFields{
		date: datefield.NewValidator(ds, s.cfg.Config.Limits()).WithLogger(s.cfg.Logger),
		time: ts,
	}

	s.mu.Lock()
	if existing := s.fields[key]; existing != nil {
		f = existing
	} else {
		s.fields[key] = f
	}
	s.mu.Unlock()
	return f, nil
}

type envelope struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
}

// writeData honours ?format=json|edn; anything else is a 400.
func writeData(w http.ResponseWriter, r *http.Request, status int, v any) {
	f := strings.TrimSpace(r.URL.Query().Get("format"))
	if f == "text" || !format.Valid(f) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown format: %s (want json|edn)", f))
		return
	}
	if f == "edn" {
		w.Header().Set("Content-Type", "application/edn; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.WriteHeader(status)
	_ = format.Write(w, envelope{Data: v}, f, r.URL.Query().Has("pretty"))
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = format.WriteJSON(w, errorBody{Error: err.Error()}, false)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	f, err := s.fieldsFor(s.localeFor(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeData(w, r, http.StatusOK, f.date.Check(r.URL.Query().Get("text")))
}

func (s *Server) handleTime(w http.ResponseWriter, r *http.Request) {
	f, err := s.fieldsFor(s.localeFor(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeData(w, r, http.StatusOK, f.time.Check(r.URL.Query().Get("text")))
}

type formatsVM struct {
	Locale   string   `json:"locale"`
	AD       string   `json:"ad"`
	BC       string   `json:"bc"`
	Fallback []string `json:"fallback"`
	Time     string   `json:"time"`
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	loc := s.localeFor(r)
	f, err := s.fieldsFor(loc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	ds := f.date.Settings()
	vm := formatsVM{
		Locale:   loc.String(),
		AD:       ds.ADFormat().Pattern(),
		BC:       ds.BCFormat().Pattern(),
		Fallback: []string{},
		Time:     f.time.DisplayFormat().Pattern(),
	}
	for _, p := range ds.FallbackFormats() {
		vm.Fallback = append(vm.Fallback, p.Pattern())
	}
	writeData(w, r, http.StatusOK, vm)
}

type docsVM struct {
	Lang   string
	Title  string
	Topics []docs.Topic
	Body   template.HTML
}

func (s *Server) render(w http.ResponseWriter, name string, vm docsVM) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, vm); err != nil {
		s.cfg.Logger.Error("render template", "template", name, "err", err)
	}
}

func (s *Server) handleDocsIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index", docsVM{
		Lang:   s.localeFor(r).String(),
		Title:  "Topics",
		Topics: docs.Topics(),
	})
}

func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	topic := r.PathValue("topic")
	body, ok := docs.Get(topic)
	if !ok {
		http.NotFound(w, r)
		return
	}
	title := topic
	for _, t := range docs.Topics() {
		if t.Name == topic && t.Title != "" {
			title = t.Title
		}
	}
	s.render(w, "topic", docsVM{
		Lang:  s.localeFor(r).String(),
		Title: title,
		Body:  renderDocHTML(body),
	})
}
