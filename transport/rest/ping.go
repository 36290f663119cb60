package rest

import (
	"io"
	"log/slog"
	"net/http"
)

type PingHandler interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
}

type pingHandler struct {
	logger *slog.Logger
}

func NewPingHandler(logger *slog.Logger) PingHandler {
	return &pingHandler{logger: logger.With("method", "PingHandler")}
}

// PingHandler answers "pong" while the process is up. The status line is
// already out when a write fails, so the failure is only logged.
func (that *pingHandler) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	if _, err := io.WriteString(w, "pong"); err != nil {
		that.logger.Warn("failed to write ping response", "error", err)
	}
}
