package rest

import (
	"context"
	"log/slog"
	"net/http"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type PingHandler interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	HealthHandler(w http.ResponseWriter, r *http.Request)
}

type pingHandler struct {
	logger  *slog.Logger
	storage pinger
}

func NewPingHandler(logger *slog.Logger, storage pinger) PingHandler {
	return &pingHandler{
		logger:  logger,
		storage: storage,
	}
}

func (that *pingHandler) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// HealthHandler reports whether the game storage answers.
func (that *pingHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "HealthHandler")

	if err := that.storage.Ping(r.Context()); err != nil {
		log.Error("storage is unavailable", "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
