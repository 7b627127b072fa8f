package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/ktesfay/selam/internal/errors"
	"github.com/ktesfay/selam/internal/models"
)

// Wire types for the generateContent request body.
type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *generateContent  `json:"systemInstruction,omitempty"`
	Contents          []generateContent `json:"contents"`
}

// GenerateContent sends prompt (preceded by the given history) to the
// generateContent endpoint and returns the reply text. One fire-and-forget
// request per call: no retries, no backoff.
func (c *GeminiClient) GenerateContent(prompt string, history []models.Message) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	if c.IsClosed() {
		return "", apierrors.ErrClientClosed
	}

	endpoint := models.GenerateURL(c.GetModel().Name)

	payload, err := buildGenerateBody(c.systemInstruction, history, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range models.DefaultHeaders(c.apiKey) {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError("generate content", endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewNetworkError("read response", endpoint, err)
	}

	if resp.StatusCode != 200 {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = "generate content failed"
		}
		return "", apierrors.NewAPIError(resp.StatusCode, endpoint, msg)
	}

	return parseGenerateResponse(body)
}

// buildGenerateBody marshals the system instruction, the prior turns, and
// the new prompt into a generateContent request body.
func buildGenerateBody(systemInstruction string, history []models.Message, prompt string) ([]byte, error) {
	contents := make([]generateContent, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, generateContent{
			Role:  string(m.Role),
			Parts: []generatePart{{Text: m.Content}},
		})
	}
	contents = append(contents, generateContent{
		Role:  string(models.RoleUser),
		Parts: []generatePart{{Text: prompt}},
	})

	req := generateRequest{Contents: contents}
	if systemInstruction != "" {
		req.SystemInstruction = &generateContent{
			Parts: []generatePart{{Text: systemInstruction}},
		}
	}

	return json.Marshal(req)
}

// parseGenerateResponse extracts the reply text from a generateContent
// response. Multi-part candidates are concatenated in order.
func parseGenerateResponse(body []byte) (string, error) {
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return "", apierrors.NewParseError("response is not a JSON object", "")
	}

	if reason := parsed.Get("promptFeedback.blockReason"); reason.String() != "" {
		return "", apierrors.NewBlockedError(reason.String())
	}

	parts := parsed.Get("candidates.0.content.parts")
	if !parts.Exists() || !parts.IsArray() {
		if reason := parsed.Get("candidates.0.finishReason"); reason.String() != "" {
			return "", apierrors.NewParseError(
				fmt.Sprintf("candidate finished without content: %s", reason.String()),
				"candidates.0.finishReason",
			)
		}
		return "", apierrors.NewParseError("no candidates in response", "candidates.0.content.parts")
	}

	var sb strings.Builder
	parts.ForEach(func(_, part gjson.Result) bool {
		sb.WriteString(part.Get("text").String())
		return true
	})

	return sb.String(), nil
}
