package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrLLMRequest: бэкенд модели ответил ошибкой или недоступен.
var ErrLLMRequest = errors.New("llm request failed")

// Message: сообщение диалога в формате Ollama /api/chat.
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	ToolName  string     `json:"tool_name,omitempty"`
}

// ToolCall: запрос модели на вызов инструмента.
type ToolCall struct {
	Function FunctionCall `json:"function"`
}

// FunctionCall: имя инструмента и аргументы. Ollama присылает аргументы
// объектом, а некоторые совместимые бэкенды строкой с JSON.
type FunctionCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// Args декодирует аргументы в map независимо от формы.
func (f FunctionCall) Args() map[string]any {
	out := map[string]any{}
	raw := bytes.TrimSpace(f.Arguments)
	if len(raw) == 0 {
		return out
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return out
		}
		raw = []byte(s)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return map[string]any{}
	}

	return out
}

// Tool: описание инструмента для модели.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// ToolFunction: имя, описание и JSON Schema параметров.
type ToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ChatRequest: тело POST /api/chat.
type ChatRequest struct {
	Model    string         `json:"model"`
	Messages []Message      `json:"messages"`
	Tools    []Tool         `json:"tools,omitempty"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

// ChatResponse: ответ /api/chat при stream=false.
type ChatResponse struct {
	Model   string  `json:"model"`
	Message Message `json:"message"`
	Done    bool    `json:"done"`
}

// LLM: бэкенд модели.
type LLM interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// Client: HTTP-клиент Ollama-совместимого /api/chat.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент. timeout <= 0, 60 секунд.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Chat выполняет один нестриминговый шаг диалога.
func (c *Client) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	const op = "assistant.Client.Chat"

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal request: %w", op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrLLMRequest, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %w: %s - %s", op, ErrLLMRequest, resp.Status, truncate(string(respBody), 256))
	}

	var out ChatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("%s: unmarshal response: %w", op, err)
	}

	return &out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
