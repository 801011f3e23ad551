// Package server exposes a styleset over HTTP for previewing templates.
// It renders on request; it never delivers messages anywhere.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/identifier"
	"github.com/arthur-debert/chatstyle/pkg/logging"
	"github.com/arthur-debert/chatstyle/pkg/predicate"
	"github.com/arthur-debert/chatstyle/pkg/render"
	"github.com/arthur-debert/chatstyle/pkg/style"
	"github.com/arthur-debert/chatstyle/pkg/styleset"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var log = logging.GetLogger("server")

// SlotCustom selects a custom message id in render requests
const SlotCustom = "custom"

// Source supplies the styles to serve; *styleset.Manager satisfies it
type Source interface {
	Current() *styleset.Set
}

// Server holds the HTTP handlers
type Server struct {
	src      Source
	gatherer prometheus.Gatherer
}

// New returns a server for src. A nil gatherer disables /metrics.
func New(src Source, gatherer prometheus.Gatherer) *Server {
	return &Server{src: src, gatherer: gatherer}
}

// Router wires every route
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/styles", s.handleStyles)
	r.Get("/emoticons", s.handleEmoticons)
	r.Post("/render", s.handleRender)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("Shutdown")
		}
	}()

	log.Info().Str("addr", addr).Msg("Preview server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrapf(err, errors.ErrInternal, "failed to serve on %s", addr)
	}
	return nil
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("took", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("Request")
	})
}

// current returns the published set or answers 503
func (s *Server) current(w http.ResponseWriter) (*styleset.Set, bool) {
	set := s.src.Current()
	if set == nil {
		respondError(w, http.StatusServiceUnavailable, "styles not loaded")
		return nil, false
	}
	return set, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	set, ok := s.current(w)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"generation": set.Generation.String(),
		"built_at":   set.BuiltAt.UTC().Format(time.RFC3339),
	})
}

type styleInfo struct {
	Name      string   `json:"name"`
	Require   string   `json:"require"`
	Emoticons int      `json:"emoticons"`
	CustomIDs []string `json:"custom_ids"`
	Clean     bool     `json:"clean"`
	Summary   string   `json:"summary"`
	Warnings  []string `json:"warnings,omitempty"`
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	set, ok := s.current(w)
	if !ok {
		return
	}

	out := make([]styleInfo, 0, len(set.Tiers)+1)
	for _, st := range set.Styles() {
		info := styleInfo{
			Name:      st.Name(),
			Require:   st.Require().String(),
			Emoticons: st.EmoticonCount(),
			CustomIDs: []string{},
			Clean:     st.Report().Clean(),
			Summary:   st.Report().Summary(),
		}
		for _, id := range st.CustomIDs() {
			info.CustomIDs = append(info.CustomIDs, id.String())
		}
		for _, warn := range st.Report().Warnings {
			info.Warnings = append(info.Warnings, warn.String())
		}
		out = append(out, info)
	}
	respondJSON(w, http.StatusOK, out)
}

// RenderRequest is the body of POST /render
type RenderRequest struct {
	Slot          string            `json:"slot"`
	Vars          map[string]string `json:"vars"`
	Permissions   []string          `json:"permissions"`
	OperatorLevel int               `json:"operator_level"`
	// ID names the custom message when Slot is "custom"
	ID string `json:"id"`
}

// RenderResponse is the answer of POST /render
type RenderResponse struct {
	Style string `json:"style"`
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	set, ok := s.current(w)
	if !ok {
		return
	}

	subject := predicate.StaticSubject{Level: req.OperatorLevel, Permissions: req.Permissions}
	st := set.For(subject)

	var res render.Result
	if req.Slot == SlotCustom {
		id, err := identifier.Parse(req.ID)
		if err != nil {
			respondCodedError(w, err)
			return
		}
		var receiver *string
		if v, ok := req.Vars[style.VarReceiver]; ok {
			receiver = &v
		}
		res = st.Custom(id, receiver, req.Vars[style.VarDisplayName], req.Vars[style.VarMessage])
	} else {
		slot, err := style.ParseSlot(req.Slot)
		if err != nil {
			respondCodedError(w, err)
			return
		}
		res = st.Render(slot, render.Context(req.Vars))
	}

	respondJSON(w, http.StatusOK, RenderResponse{Style: st.Name(), Kind: res.Kind.String(), Text: res.Text})
}

// EmoticonInfo is one row of GET /emoticons
type EmoticonInfo struct {
	Trigger string `json:"trigger"`
	Text    string `json:"text"`
}

func (s *Server) handleEmoticons(w http.ResponseWriter, r *http.Request) {
	set, ok := s.current(w)
	if !ok {
		return
	}

	q := r.URL.Query()
	level, _ := strconv.Atoi(q.Get("op"))
	subject := predicate.StaticSubject{Level: level, Permissions: q["permission"]}
	filter := strings.ToLower(q.Get("filter"))

	out := []EmoticonInfo{}
	for trigger, n := range set.EmoticonsFor(subject) {
		if filter != "" && !strings.Contains(strings.ToLower(trigger), filter) {
			continue
		}
		out = append(out, EmoticonInfo{Trigger: trigger, Text: render.Render(n, nil)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Trigger < out[j].Trigger })
	respondJSON(w, http.StatusOK, out)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Debug().Err(err).Msg("Writing response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondCodedError(w http.ResponseWriter, err error) {
	respondJSON(w, http.StatusBadRequest, map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}
