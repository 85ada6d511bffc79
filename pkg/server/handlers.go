package server

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/groupspec"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
	"github.com/matzehuels/hemicycle/pkg/render"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

// maxBodyBytes limits POST bodies.
const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleRender renders a diagram from query parameters:
// groups (compact encoding), angle (degrees), radius_ratio, row_connected,
// width, legend, labels, graphviz and title.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	req, err := requestFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	req.Format = string(format)

	res, err := s.execute(r, req, format)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) handleCreateDiagram(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, errors.New(errors.ErrCodeUnsupported, "diagram storage is disabled"))
		return
	}

	var req DiagramRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if req.Format == "" {
		req.Format = string(render.FormatSVG)
	}
	format, err := render.ParseFormat(req.Format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.execute(r, req, format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	id := uuid.NewString()
	record, err := json.Marshal(storedDiagram{
		Format:    string(format),
		Seats:     res.Stats.Seats,
		Rows:      res.Stats.Rows,
		Data:      res.Artifacts[format],
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "encode diagram"))
		return
	}
	if err := s.store.Set(r.Context(), s.keyer.DiagramKey(id), record, s.ttl); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store diagram"))
		return
	}

	url := "/v1/diagrams/" + id
	w.Header().Set("Location", url)
	s.writeJSON(w, http.StatusCreated, DiagramResponse{
		ID:     id,
		Format: string(format),
		Seats:  res.Stats.Seats,
		Rows:   res.Stats.Rows,
		URL:    url,
	})
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil || s.store == nil {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "diagram %q not found", id))
		return
	}

	data, hit, err := s.store.Get(r.Context(), s.keyer.DiagramKey(id))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "load diagram"))
		return
	}
	if !hit {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "diagram %q not found", id))
		return
	}

	var d storedDiagram
	if err := json.Unmarshal(data, &d); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "decode diagram"))
		return
	}
	w.Header().Set("Content-Type", render.Format(d.Format).ContentType())
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(d.Data)
}

// execute runs the pipeline for one request and one format.
func (s *Server) execute(r *http.Request, req DiagramRequest, format render.Format) (*pipeline.Result, error) {
	opts, err := s.options(req)
	if err != nil {
		return nil, err
	}
	opts.Formats = []render.Format{format}
	return s.runner.Execute(r.Context(), opts)
}

func (s *Server) options(req DiagramRequest) (pipeline.Options, error) {
	groups, err := groupspec.Parse(req.Groups)
	if err != nil {
		return pipeline.Options{}, err
	}
	if n := seating.TotalSeats(groups); n > s.maxSeats {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidSeats,
			"chamber has %d seats, this server renders at most %d", n, s.maxSeats)
	}

	opts := s.defaults
	opts.Groups = groups
	if req.Angle != nil {
		opts.Angle = *req.Angle * math.Pi / 180
	}
	if req.RadiusRatio != nil {
		opts.RadiusRatio = *req.RadiusRatio
	}
	if req.RowConnected != nil {
		opts.RowConnected = *req.RowConnected
	}
	if req.Width != 0 {
		opts.Width = req.Width
	}
	opts.Legend = opts.Legend || req.Legend
	opts.Labels = opts.Labels || req.Labels
	opts.Graphviz = opts.Graphviz || req.Graphviz
	if req.Title != "" {
		opts.Title = req.Title
	}
	return opts, nil
}

func requestFromQuery(r *http.Request) (DiagramRequest, error) {
	q := r.URL.Query()
	req := DiagramRequest{Groups: q.Get("groups"), Title: q.Get("title")}

	floatParam := func(name string) (*float64, error) {
		v := strings.TrimSpace(q.Get(name))
		if v == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s: not a number: %q", name, v)
		}
		return &f, nil
	}
	boolParam := func(name string) (*bool, error) {
		v := strings.TrimSpace(q.Get(name))
		if v == "" {
			return nil, nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s: not a boolean: %q", name, v)
		}
		return &b, nil
	}

	var err error
	if req.Angle, err = floatParam("angle"); err != nil {
		return req, err
	}
	if req.RadiusRatio, err = floatParam("radius_ratio"); err != nil {
		return req, err
	}
	if req.RowConnected, err = boolParam("row_connected"); err != nil {
		return req, err
	}
	width, err := floatParam("width")
	if err != nil {
		return req, err
	}
	if width != nil {
		req.Width = *width
	}
	for name, dst := range map[string]*bool{"legend": &req.Legend, "labels": &req.Labels, "graphviz": &req.Graphviz} {
		b, err := boolParam(name)
		if err != nil {
			return req, err
		}
		if b != nil {
			*dst = *b
		}
	}
	return req, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: ErrorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

// statusFor maps error codes to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}
