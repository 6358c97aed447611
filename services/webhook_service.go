package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// WebhookService talks to the external workflow engine. Forward relays a raw
// payload 1:1 (the proxy routes); the typed helpers build the engine's
// request envelope. Calls are never retried; the user re-triggers the action.
type WebhookService struct {
	client  *http.Client
	baseURL string
}

func NewWebhookService() *WebhookService {
	return &WebhookService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(os.Getenv("WORKFLOW_WEBHOOK_URL"), "/"),
	}
}

func NewWebhookServiceWithBase(baseURL string) *WebhookService {
	return &WebhookService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Forward posts the body as-is to baseURL+path and returns the engine's
// status code and body unmodified.
func (w *WebhookService) Forward(path string, body []byte) (int, []byte, error) {
	if w.baseURL == "" {
		return 0, nil, fmt.Errorf("WORKFLOW_WEBHOOK_URL not set")
	}

	req, err := http.NewRequest(http.MethodPost, w.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("workflow request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read workflow response error: %w", err)
	}
	return resp.StatusCode, respBytes, nil
}

type webhookEnvelope struct {
	UserID    uint           `json:"user_id"`
	Message   string         `json:"message,omitempty"`
	Meal      any            `json:"meal,omitempty"`
	CreatedAt string         `json:"created_at"`
	Context   webhookContext `json:"context"`
}

type webhookContext struct {
	Platform string `json:"platform"`
	Source   string `json:"source"`
}

// SendChat relays a chat message and returns the assistant's reply text.
func (w *WebhookService) SendChat(userID uint, message string) (string, error) {
	env := webhookEnvelope{
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Context:   webhookContext{Platform: "web", Source: "chat_widget"},
	}
	b, _ := json.Marshal(env)

	status, body, err := w.Forward("/chat", b)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		var engineErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &engineErr) == nil && engineErr.Error != "" {
			return "", fmt.Errorf("workflow error (%d): %s", status, engineErr.Error)
		}
		return "", fmt.Errorf("workflow error (%d): %s", status, string(body))
	}

	var out struct {
		Message  string `json:"message"`
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode workflow response error: %w", err)
	}
	reply := out.Message
	if reply == "" {
		reply = out.Response
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("empty reply from workflow")
	}
	return reply, nil
}

// RequestRecommendations asks the engine for AI recommendations based on
// today's meal data. The returned strings are opaque to this service.
func (w *WebhookService) RequestRecommendations(userID uint, meals any) ([]string, error) {
	env := webhookEnvelope{
		UserID:    userID,
		Meal:      meals,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Context:   webhookContext{Platform: "web", Source: "recommendations"},
	}
	b, _ := json.Marshal(env)

	status, body, err := w.Forward("/recommendations", b)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("workflow error (%d): %s", status, string(body))
	}

	var out struct {
		Recommendations []string `json:"recommendations"`
		Response        string   `json:"response"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode workflow response error: %w", err)
	}
	if len(out.Recommendations) > 0 {
		return out.Recommendations, nil
	}

	// some flows return one newline-separated blob
	var recs []string
	for _, line := range strings.Split(out.Response, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "-•* \t")
		if line != "" {
			recs = append(recs, line)
		}
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("empty recommendations from workflow")
	}
	return recs, nil
}
