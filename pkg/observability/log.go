package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug records to a
// logger.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks reporting to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

// Install registers h for pipeline, cache and HTTP events.
func (h *LogHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) done(msg string, duration time.Duration, err error, kv ...any) {
	kv = append(kv, "took", duration.Round(time.Microsecond))
	if err != nil {
		h.Logger.Debug(msg+" failed", append(kv, "err", err)...)
		return
	}
	h.Logger.Debug(msg, kv...)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, seats int) {
	h.Logger.Debug("layout start", "seats", seats)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, seats, rows int, d time.Duration, err error) {
	h.done("layout", d, err, "seats", seats, "rows", rows)
}

func (h *LogHooks) OnAllocationStart(_ context.Context, method string, groups int) {
	h.Logger.Debug("allocation start", "method", method, "groups", groups)
}

func (h *LogHooks) OnAllocationComplete(_ context.Context, method string, d time.Duration, err error) {
	h.done("allocation", d, err, "method", method)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("render", d, err, "formats", formats)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.Logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.Logger.Info("response", "method", method, "route", route, "status", status, "took", d.Round(time.Microsecond))
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
