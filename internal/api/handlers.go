package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/FilippoRanza/simplegraph/pkg/cache"
	"github.com/FilippoRanza/simplegraph/pkg/canonical"
	"github.com/FilippoRanza/simplegraph/pkg/dot"
	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/observability"
	"github.com/FilippoRanza/simplegraph/pkg/path"
	"github.com/FilippoRanza/simplegraph/pkg/store"
)

// handleConvert rebuilds the posted form in the requested backend and
// returns what that backend actually stores. Converting a sparse
// capture through the dense backend is how clients normalize duplicate
// arcs away.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	backend := r.URL.Query().Get("backend")
	if backend == "" {
		backend = canonical.BackendSparse
	}

	form, err := canonical.Decode[float64](r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	g, err := form.Build(backend)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := canonical.Capture[float64](g).Encode(w); err != nil {
		s.logger.Error("encode converted form", "err", err)
	}
}

// handleRender turns the posted form into DOT and optionally lays it
// out: format=dot returns the source, svg and png run graphviz with the
// artifact cache in front.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "dot"
	}

	form, err := canonical.Decode[float64](r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	g, err := form.Sparse()
	if err != nil {
		writeError(w, err)
		return
	}
	source := dot.Source[float64](g)

	switch format {
	case "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		_, _ = io.WriteString(w, source)
	case "svg", "png":
		observability.Render().OnRenderStart(r.Context(), format, g.NodeCount(), g.ArcCount())
		data, err := s.renderCached(r, format, source)
		if err != nil {
			writeError(w, err)
			return
		}
		if format == "svg" {
			w.Header().Set("Content-Type", "image/svg+xml")
		} else {
			w.Header().Set("Content-Type", "image/png")
		}
		_, _ = w.Write(data)
	default:
		writeError(w, errors.New(errors.ErrCodeInvalidFormat,
			"unknown format %q: want dot, svg or png", format))
	}
}

func (s *Server) renderCached(r *http.Request, format, source string) ([]byte, error) {
	ctx := r.Context()
	key := cache.RenderKey(format, []byte(source))
	if data, found, err := s.cache.Get(ctx, key); err == nil && found {
		s.logger.Debug("render cache hit", "key", key)
		observability.Cache().OnCacheHit(ctx, "render")
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, "render")

	start := time.Now()
	var (
		data []byte
		err  error
	)
	switch format {
	case "svg":
		data, err = dot.RenderSVG(ctx, source)
	case "png":
		data, err = dot.RenderPNG(ctx, source)
	}
	observability.Render().OnRenderComplete(ctx, format, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, data, renderTTL); err != nil {
		s.logger.Warn("render cache set failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "render", len(data))
	}
	return data, nil
}

type costRequest struct {
	Form json.RawMessage `json:"form"`
	Walk []int           `json:"walk"`
}

type costStep struct {
	Src  int     `json:"src"`
	Dst  int     `json:"dst"`
	Cost float64 `json:"cost"`
}

type costResponse struct {
	Steps []costStep `json:"steps"`
}

// handleCost enumerates the sub-walk costs of a walk over the posted
// form. The walk is checked against the graph up front so a missing arc
// is a request error, not a panic.
func (s *Server) handleCost(w http.ResponseWriter, r *http.Request) {
	var req costRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidRequest, err, "decode cost request"))
		return
	}
	if req.Form == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidRequest, "missing form"))
		return
	}

	form, err := canonical.Unmarshal[float64](req.Form)
	if err != nil {
		writeError(w, err)
		return
	}
	g, err := form.Sparse()
	if err != nil {
		writeError(w, err)
		return
	}

	for _, node := range req.Walk {
		if node < 0 || node >= g.NodeCount() {
			writeError(w, errors.New(errors.ErrCodeInvalidWalk,
				"walk node %d out of range [0, %d)", node, g.NodeCount()))
			return
		}
	}
	for i := 0; i+1 < len(req.Walk); i++ {
		if !g.HasArc(req.Walk[i], req.Walk[i+1]) {
			writeError(w, errors.New(errors.ErrCodeInvalidWalk,
				"no arc %d->%d in walk", req.Walk[i], req.Walk[i+1]))
			return
		}
	}

	resp := costResponse{Steps: []costStep{}}
	for _, step := range path.Collect(path.New[float64](g, req.Walk)) {
		resp.Steps = append(resp.Steps, costStep{Src: step.Src, Dst: step.Dst, Cost: step.Cost})
	}
	writeJSON(w, http.StatusOK, resp)
}

type createGraphRequest struct {
	Name string          `json:"name"`
	Form json.RawMessage `json:"form"`
}

type graphMeta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NodeCount int       `json:"node_count"`
	ArcCount  int       `json:"arc_count"`
	GType     string    `json:"gtype"`
	CreatedAt time.Time `json:"created_at"`
}

type graphDetail struct {
	graphMeta
	Form json.RawMessage `json:"form"`
}

func metaFor(doc *store.Document, form *canonical.Form[float64]) graphMeta {
	return graphMeta{
		ID:        doc.ID,
		Name:      doc.Name,
		NodeCount: form.NodeCount(),
		ArcCount:  form.ArcCount(),
		GType:     form.Type().String(),
		CreatedAt: doc.CreatedAt,
	}
}

func (s *Server) handleCreateGraph(w http.ResponseWriter, r *http.Request) {
	var req createGraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidRequest, err, "decode create request"))
		return
	}
	if req.Name == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidRequest, "missing name"))
		return
	}
	form, err := canonical.Unmarshal[float64](req.Form)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := store.NewDocument(req.Name, form)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.Put(r.Context(), doc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, metaFor(doc, form))
}

func (s *Server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := []graphMeta{}
	for _, doc := range docs {
		form, err := doc.Form()
		if err != nil {
			s.logger.Warn("skip undecodable document", "id", doc.ID, "err", err)
			continue
		}
		out = append(out, metaFor(doc, form))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	form, err := doc.Form()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, graphDetail{
		graphMeta: metaFor(doc, form),
		Form:      json.RawMessage(doc.Payload),
	})
}

func (s *Server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
