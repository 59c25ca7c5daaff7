// Package server provides the HTTP facade over the render pipeline and
// the scene store.
//
// # Endpoints
//
//   - POST /render: TOML scene description in, TikZ source out. Results
//     are cached by a content hash of the input and the export options.
//   - GET /scenes: stored scene names.
//   - GET/PUT/DELETE /scenes/{name}: stored scene documents.
//   - POST /scenes/{name}/render: render a stored scene.
//   - GET /healthz: liveness.
//
// Errors are returned as JSON envelopes carrying the structured error
// code, mapped to HTTP status by category.
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/sketch3d/pkg/cache"
	"github.com/matzehuels/sketch3d/pkg/errors"
	"github.com/matzehuels/sketch3d/pkg/sceneio"
	"github.com/matzehuels/sketch3d/pkg/store"
	"github.com/matzehuels/sketch3d/pkg/tikz"
)

// maxSceneBytes bounds request bodies; scene files are small.
const maxSceneBytes = 1 << 20

// renderTTL is how long cached render results live.
const renderTTL = 24 * time.Hour

// Server handles HTTP requests.
type Server struct {
	store  store.Store
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithStore sets the scene store backend.
func WithStore(st store.Store) Option {
	return func(s *Server) { s.store = st }
}

// WithCache sets the render cache backend.
func WithCache(c cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

// WithKeyer sets the cache key generator.
func WithKeyer(k cache.Keyer) Option {
	return func(s *Server) { s.keyer = k }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a server with in-memory defaults: memory store, null
// cache.
func New(opts ...Option) *Server {
	s := &Server{
		store:  store.NewMemoryStore(),
		cache:  cache.NewNullCache(),
		keyer:  cache.NewDefaultKeyer(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Route("/scenes", func(r chi.Router) {
		r.Get("/", s.handleListScenes)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.handleGetScene)
			r.Put("/", s.handlePutScene)
			r.Delete("/", s.handleDeleteScene)
			r.Post("/render", s.handleRenderScene)
		})
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	source, err := readBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, source)
}

func (s *Server) handleRenderScene(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidateSceneName(name); err != nil {
		s.writeError(w, r, err)
		return
	}
	sc, err := s.store.Get(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, []byte(sc.Source))
}

// render runs the cached render path shared by both render endpoints.
func (s *Server) render(w http.ResponseWriter, r *http.Request, source []byte) {
	f, err := sceneio.Parse(source)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	standalone := r.URL.Query().Get("standalone") == "true"

	key := s.keyer.RenderKey(cache.Hash(source), renderKeyOpts(f, standalone))
	if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		writeTikZ(w, data)
		return
	}

	var buf bytes.Buffer
	var opts []tikz.Option
	if standalone {
		opts = append(opts, tikz.WithStandalone())
	}
	if err := f.Scene().Render(&buf, opts...); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, buf.Bytes(), renderTTL); err != nil {
		s.logger.Warn("caching render result", "err", err)
	}
	writeTikZ(w, buf.Bytes())
}

func (s *Server) handleListScenes(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"scenes": names})
}

func (s *Server) handleGetScene(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidateSceneName(name); err != nil {
		s.writeError(w, r, err)
		return
	}
	sc, err := s.store.Get(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handlePutScene(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidateSceneName(name); err != nil {
		s.writeError(w, r, err)
		return
	}
	source, err := readBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	// Reject scenes that do not even decode; best-effort entry dropping
	// happens at render time, not here.
	if _, err := sceneio.Parse(source); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Put(r.Context(), &store.Scene{Name: name, Source: string(source)}); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *Server) handleDeleteScene(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidateSceneName(name); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), name); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func readBody(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxSceneBytes+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading request body")
	}
	if len(data) > maxSceneBytes {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scene description exceeds %d bytes", maxSceneBytes)
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty request body")
	}
	return data, nil
}

func renderKeyOpts(f *sceneio.File, standalone bool) cache.RenderKeyOpts {
	opts := cache.RenderKeyOpts{Standalone: standalone}
	if f.Export != nil {
		opts.Width = f.Export.Width
		opts.Height = f.Export.Height
		opts.Epsilon = f.Export.Epsilon
	}
	return opts
}

// errorEnvelope is the JSON error body.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidScene,
		errors.ErrCodeInvalidView, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidName:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeSceneNotFound,
		errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeStorage:
		status = http.StatusBadGateway
	}
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}

	var env errorEnvelope
	env.Error.Code = string(code)
	if env.Error.Code == "" {
		env.Error.Code = string(errors.ErrCodeInternal)
	}
	env.Error.Message = errors.UserMessage(err)
	writeJSON(w, status, env)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeTikZ(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/x-tex")
	_, _ = w.Write(data)
}
