package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"google.golang.org/genai"

	"github.com/phrazzld/lexideck/internal/config"
	"github.com/phrazzld/lexideck/internal/generation"
	"github.com/phrazzld/lexideck/internal/redact"
)

// Generator implements generation.Generator using Google's Gemini API.
type Generator struct {
	logger *slog.Logger
	cfg    config.LLMConfig
	client *genai.Client
	model  string

	// call performs a single generation request. Tests replace it to drive
	// the retry logic without a network.
	call func(ctx context.Context, prompt string) (string, error)

	rng *rand.Rand
}

var _ generation.Generator = (*Generator)(nil)

// New creates a Generator from the LLM configuration.
func New(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	g := &Generator{
		logger: logger,
		cfg:    cfg,
		client: client,
		model:  cfg.ModelName,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.call = g.callGemini

	return g, nil
}

// Generate submits the prompt, retrying transient failures with exponential
// backoff and jitter. Permanent failures (safety blocks, malformed replies)
// are returned immediately.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", generation.ErrGenerationFailed)
	}

	maxRetries := g.cfg.MaxRetries
	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "Invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	baseDelaySeconds := g.cfg.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}

	for attempt := 0; ; attempt++ {
		g.logger.DebugContext(ctx, "Making Gemini API call",
			"model", g.model,
			"attempt", attempt+1,
			"max_attempts", maxRetries+1)

		text, err := g.call(ctx, prompt)
		if err == nil {
			g.logger.DebugContext(ctx, "Gemini API call successful",
				"attempt", attempt+1,
				"reply_length", len(text))
			return text, nil
		}

		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attempt+1,
			"error", redact.Error(err))

		// Permanent errors do not improve on retry.
		if errors.Is(err, generation.ErrContentBlocked) || errors.Is(err, generation.ErrInvalidResponse) {
			return "", err
		}

		if attempt >= maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %s",
				generation.ErrTransientFailure, maxRetries, redact.Error(err))
		}

		// delay = baseDelay * 2^attempt * jitter in [0.5, 1.0)
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitter := 0.5 + g.rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitter * float64(time.Second))

		g.logger.InfoContext(ctx, "Retrying after delay",
			"attempt", attempt+1,
			"delay", delay.String())

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// callGemini performs one generation request against the live API.
func (g *Generator) callGemini(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		// Treated as transient; the retry loop decides whether to give up.
		return "", err
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason safety", generation.ErrContentBlocked)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty reply text", generation.ErrInvalidResponse)
	}

	return text, nil
}
