package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type OllamaClient struct {
	url    string
	model  string
	client *http.Client
}

func NewOllamaClient() *OllamaClient {
	url := strings.TrimSpace(os.Getenv("OLLAMA_URL"))
	if url == "" {
		url = "http://localhost:11434/api/generate"
	}

	model := os.Getenv("MODEL_NAME")
	if model == "" {
		model = "gpt-oss:20b"
	}

	return &OllamaClient{
		url:    url,
		model:  model,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

// Complete sends a single non-streaming generate request and returns the
// model's response text.
func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	b, err := json.Marshal(map[string]any{
		"model":  c.model,
		"prompt": prompt,
		"stream": false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url,
		bytes.NewReader(b),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Println("[ai] ollama error:", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", errors.New(
			"ollama api error: " +
				resp.Status +
				" body=" + string(respBody),
		)
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	return out.Response, nil
}
