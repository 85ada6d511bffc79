package server

import "time"

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse wraps every error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries a machine-readable code and a user message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DiagramRequest is the body of POST /v1/diagrams. Angle is in degrees.
// Omitted fields take the server defaults.
type DiagramRequest struct {
	Groups       string   `json:"groups"`
	Format       string   `json:"format,omitempty"`
	Angle        *float64 `json:"angle,omitempty"`
	RadiusRatio  *float64 `json:"radius_ratio,omitempty"`
	RowConnected *bool    `json:"row_connected,omitempty"`
	Width        float64  `json:"width,omitempty"`
	Legend       bool     `json:"legend,omitempty"`
	Labels       bool     `json:"labels,omitempty"`
	Title        string   `json:"title,omitempty"`
	Graphviz     bool     `json:"graphviz,omitempty"`
}

// DiagramResponse is returned by POST /v1/diagrams.
type DiagramResponse struct {
	ID     string `json:"id"`
	Format string `json:"format"`
	Seats  int    `json:"seats"`
	Rows   int    `json:"rows"`
	URL    string `json:"url"`
}

// storedDiagram is the cache record behind a diagram id.
type storedDiagram struct {
	Format    string    `json:"format"`
	Seats     int       `json:"seats"`
	Rows      int       `json:"rows"`
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}
