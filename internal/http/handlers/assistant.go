package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/bank-backoffice/internal/assistant"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/log"
)

type chatRequest struct {
	Messages []chatMessage  `json:"messages"`
	Model    string         `json:"model"`
	Options  map[string]any `json:"options"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat отдаёт ход диалога с ассистентом как text/event-stream.
// Ошибки валидации приходят обычным JSON до начала потока.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	var in chatRequest
	if err := decodeStrict(r, &in); err != nil {
		writeError(w, r, errInvalidBody)
		return
	}

	ci := assistant.ChatInput{Model: in.Model, Options: in.Options}
	for _, m := range in.Messages {
		ci.Messages = append(ci.Messages, assistant.Message{Role: m.Role, Content: m.Content})
	}
	if err := ci.Validate(); err != nil {
		writeError(w, r, err)
		return
	}

	flusher, _ := w.(http.Flusher)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	ctx := r.Context()
	if h.ChatTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.ChatTimeout)
		defer cancel()
	}

	emit := func(e assistant.Event) error {
		b, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", b); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	}

	if err := h.Assistant.Chat(ctx, ci, emit); err != nil {
		log.From(ctx).Warn("assistant_stream_aborted", slog.String("err", err.Error()))
	}
}
