package cli

import (
	"github.com/charmbracelet/log"

	"github.com/mindloom/mindloom/pkg/observability"
)

// logHooks forwards lifecycle and document events to the session logger
// at debug level, with failures promoted to warnings.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.LifecycleHooks = (*logHooks)(nil)
	_ observability.DocumentHooks  = (*logHooks)(nil)
)

// registerHooks installs logging hooks for the rest of the process.
func registerHooks(logger *log.Logger) {
	h := &logHooks{logger: logger}
	observability.SetLifecycleHooks(h)
	observability.SetDocumentHooks(h)
}

func (h *logHooks) OnTransition(from, event, to string) {
	h.logger.Debug("transition", "from", from, "event", event, "to", to)
}

func (h *logHooks) OnEventIgnored(state, event string) {
	h.logger.Debug("event ignored", "state", state, "event", event)
}

func (h *logHooks) OnOpen(path string, err error) {
	if err != nil {
		h.logger.Warn("open failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("opened", "path", path)
}

func (h *logHooks) OnSave(path string, err error) {
	if err != nil {
		h.logger.Warn("save failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("saved", "path", path)
}

func (h *logHooks) OnExport(path, format string, err error) {
	if err != nil {
		h.logger.Warn("export failed", "path", path, "format", format, "err", err)
		return
	}
	h.logger.Debug("exported", "path", path, "format", format)
}

func (h *logHooks) OnSnapshot(key string, size int, err error) {
	if err != nil {
		h.logger.Warn("snapshot failed", "key", key, "err", err)
		return
	}
	h.logger.Debug("snapshot written", "key", key, "bytes", size)
}
