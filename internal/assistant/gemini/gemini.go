package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/wecareapp/wecare/internal/assistant"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// request types mirror the Gemini generateContent API structure.
type request struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type response struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type Client struct {
	apiKey  string
	model   string
	client  *http.Client
	baseURL string
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{},
		baseURL: defaultBaseURL,
	}
}

func (c *Client) AnalyzeImage(ctx context.Context, imageData []byte, mimeType string) (string, error) {
	body := request{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{Text: assistant.AnalysisPrompt},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(imageData),
				}},
			},
		}},
	}
	return c.generate(ctx, body)
}

func (c *Client) Chat(ctx context.Context, history []assistant.Turn, message string) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, content{
			Role:  geminiRole(turn.Role),
			Parts: []part{{Text: turn.Content}},
		})
	}
	contents = append(contents, content{
		Role:  "user",
		Parts: []part{{Text: message}},
	})

	body := request{
		SystemInstruction: &content{Parts: []part{{Text: assistant.ChatSystemPrompt}}},
		Contents:          contents,
	}
	return c.generate(ctx, body)
}

func (c *Client) generate(ctx context.Context, body request) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("failed to close gemini response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, errBody)
	}

	var respBody response
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(respBody.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var text string
	for _, p := range respBody.Candidates[0].Content.Parts {
		text += p.Text
	}
	if text == "" {
		return "", fmt.Errorf("gemini returned no text parts")
	}
	return text, nil
}

// geminiRole maps transcript roles to the role labels the Gemini API expects.
func geminiRole(role string) string {
	if role == "assistant" {
		return "model"
	}
	return "user"
}
