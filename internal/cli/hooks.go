package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ortfo/gui/pkg/observability"
)

// logHooks reports codec, cache and HTTP events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetCodecHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnLayoutStart(_ context.Context, languages int) {
	h.logger.Debug("computing positions", "languages", languages)
}

func (h logHooks) OnLayoutComplete(_ context.Context, languages int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("positions failed", "languages", languages, "elapsed", d, "err", err)
		return
	}
	h.logger.Debug("positions computed", "languages", languages, "elapsed", d)
}

func (h logHooks) OnNormalize(rows, capacity int, err error) {
	if err != nil {
		h.logger.Debug("normalize failed", "rows", rows, "capacity", capacity, "err", err)
		return
	}
	h.logger.Debug("normalized", "rows", rows, "capacity", capacity)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "host", host, "path", path, "status", status, "elapsed", d)
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "method", method, "host", host, "path", path, "err", err)
}

var (
	_ observability.CodecHooks = logHooks{}
	_ observability.CacheHooks = logHooks{}
	_ observability.HTTPHooks  = logHooks{}
)
