// assistant: чат-ассистент бэк-офиса поверх Ollama-совместимой модели.
//
// Модель получает каталог read-only инструментов (поиск клиента, счета,
// сводки по счёту и отделению) и вызывает их, пока не сформирует ответ
// или не исчерпает лимит раундов. Ход диалога отдаётся событиями
// (Event), которые HTTP-слой пишет в text/event-stream.
package assistant

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/pribylovaa/bank-backoffice/internal/apperr"
	"github.com/pribylovaa/bank-backoffice/internal/config"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/log"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/redact"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

const maxMessages = 50

// ErrInvalidConversation: пустой диалог, лишние роли или слишком много сообщений.
var ErrInvalidConversation = apperr.New(apperr.KindValidation, "VALIDATION_MESSAGES",
	"messages must be 1..50 items with role system, user or assistant")

var systemPrompt = strings.Join([]string{
	"Sen bir banka back-office asistanısın. Yanıtları Türkçe ver.",
	"Müşteri ve hesap bilgisini yalnızca araç (tool) sonuçlarından al, asla uydurma.",
	"Kriter yetersizse araç çağırmadan önce kullanıcıdan kriter iste.",
	"Selamlaşma ve sohbette araç çağırma.",
	"TCKN, telefon, kart ve IBAN daima maskeli kalmalı.",
	"Araç sonucu boşsa 'kayıt bulunamadı' de.",
}, "\n")

// Event: кадр потока ответа.
type Event struct {
	Phase   string         `json:"phase,omitempty"`
	Name    string         `json:"name,omitempty"`
	Args    map[string]any `json:"args,omitempty"`
	Message *Message       `json:"message,omitempty"`
	Done    bool           `json:"done,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// ChatInput: запрос пользователя.
type ChatInput struct {
	Messages []Message
	Model    string
	Options  map[string]any
}

// Validate проверяет запрос до начала потока.
func (in ChatInput) Validate() error {
	if len(in.Messages) == 0 || len(in.Messages) > maxMessages {
		return ErrInvalidConversation
	}

	for _, m := range in.Messages {
		switch m.Role {
		case RoleSystem, RoleUser, RoleAssistant:
		default:
			return ErrInvalidConversation
		}
	}

	return nil
}

// Assistant ведёт диалог с моделью и исполняет её вызовы инструментов.
type Assistant struct {
	llm       LLM
	tools     *Tools
	model     string
	maxRounds int
}

// New создаёт ассистента.
func New(llm LLM, tools *Tools, cfg config.AssistantConfig) *Assistant {
	rounds := cfg.MaxToolRounds
	if rounds <= 0 {
		rounds = 1
	}

	return &Assistant{
		llm:       llm,
		tools:     tools,
		model:     cfg.Model,
		maxRounds: rounds,
	}
}

// Chat проводит диалог и отдаёт события через emit. Ошибки модели и
// инструментов сообщаются кадром {error}, а не возвращаемым значением:
// к этому моменту поток уже начат. Возвращается только ошибка emit
// (клиент ушёл) или ErrInvalidConversation.
func (a *Assistant) Chat(ctx context.Context, in ChatInput, emit func(Event) error) error {
	const op = "assistant.Chat"

	if err := in.Validate(); err != nil {
		return err
	}

	lg := log.From(ctx)

	model := a.model
	if in.Model != "" {
		model = in.Model
	}

	options := map[string]any{"temperature": 0, "top_p": 0.9}
	for k, v := range in.Options {
		options[k] = v
	}

	convo := make([]Message, 0, len(in.Messages)+1)
	convo = append(convo, Message{Role: RoleSystem, Content: systemPrompt})
	for _, m := range in.Messages {
		convo = append(convo, Message{Role: m.Role, Content: m.Content})
	}

	ask := func() (*ChatResponse, error) {
		return a.llm.Chat(ctx, &ChatRequest{
			Model:    model,
			Messages: convo,
			Tools:    Catalogue(),
			Stream:   false,
			Options:  options,
		})
	}

	resp, err := ask()
	if err != nil {
		lg.Error("assistant_llm_failed", slog.String("op", op), slog.String("err", err.Error()))
		return emit(Event{Error: "llm_request_failed"})
	}

	for round := 0; len(resp.Message.ToolCalls) > 0; round++ {
		if round >= a.maxRounds {
			lg.Warn("assistant_tool_rounds_exhausted", slog.Int("rounds", a.maxRounds))
			return emit(Event{Error: "tool_round_limit"})
		}

		convo = append(convo, resp.Message)

		for _, call := range resp.Message.ToolCalls {
			name := call.Function.Name
			args := call.Function.Args()

			if err := emit(Event{Phase: "tool", Name: name, Args: args}); err != nil {
				return err
			}

			result, err := json.Marshal(a.tools.Call(ctx, name, args))
			if err != nil {
				result = []byte(`{"error":"tool_runtime_error"}`)
			}

			convo = append(convo, Message{Role: RoleTool, ToolName: name, Content: string(result)})
		}

		resp, err = ask()
		if err != nil {
			lg.Error("assistant_llm_failed", slog.String("op", op), slog.String("err", err.Error()))
			return emit(Event{Error: "llm_request_failed"})
		}
	}

	content := redact.SanitizePII(resp.Message.Content)
	if err := emit(Event{Message: &Message{Role: RoleAssistant, Content: content}}); err != nil {
		return err
	}

	return emit(Event{Done: true})
}
