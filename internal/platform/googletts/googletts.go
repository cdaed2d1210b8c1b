// Package googletts synthesizes speech through the public Google Translate
// text-to-speech endpoint. It is thin HTTP glue behind the tts.Synthesizer
// boundary; no synthesis logic lives here.
package googletts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/phrazzld/lexideck/internal/config"
	"github.com/phrazzld/lexideck/internal/redact"
	"github.com/phrazzld/lexideck/internal/tts"
)

// Client calls the Google Translate TTS endpoint.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	endpoint   string
}

var _ tts.Synthesizer = (*Client)(nil)

// New creates a Client from the TTS configuration.
func New(logger *slog.Logger, cfg config.TTSConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.Endpoint == "" {
		return nil, errors.New("TTS endpoint cannot be empty")
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   cfg.Endpoint,
	}, nil
}

// Synthesize fetches the MP3 pronunciation of text in the given language.
func (c *Client) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if text == "" {
		return nil, errors.New("text to synthesize cannot be empty")
	}
	if lang == "" {
		return nil, errors.New("synthesis language cannot be empty")
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", lang)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build TTS request: %w", err)
	}

	c.logger.DebugContext(ctx, "Requesting speech synthesis",
		"lang", lang,
		"text_length", len(text))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TTS request failed: %s", redact.Error(err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TTS request failed with status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TTS response: %w", err)
	}

	if len(audio) == 0 {
		return nil, errors.New("TTS response contained no audio")
	}

	return audio, nil
}
