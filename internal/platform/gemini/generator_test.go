package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/lexideck/internal/config"
	"github.com/phrazzld/lexideck/internal/generation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestGenerator builds a Generator whose call func is the given stub, so
// the retry logic runs without a client or network.
func newTestGenerator(cfg config.LLMConfig, call func(ctx context.Context, prompt string) (string, error)) *Generator {
	return &Generator{
		logger: testLogger(),
		cfg:    cfg,
		model:  cfg.ModelName,
		call:   call,
		rng:    rand.New(rand.NewSource(1)),
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := New(ctx, nil, config.LLMConfig{APIKey: "k", ModelName: "m"})
	assert.Error(t, err)

	_, err = New(ctx, testLogger(), config.LLMConfig{ModelName: "m"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = New(ctx, testLogger(), config.LLMConfig{APIKey: "k"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestNew_BuildsClient(t *testing.T) {
	t.Parallel()

	g, err := New(context.Background(), testLogger(), config.LLMConfig{
		APIKey:    "test-key",
		ModelName: "gemini-2.0-flash",
	})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", g.model)
	assert.NotNil(t, g.call)
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(config.LLMConfig{ModelName: "m"}, nil)

	_, err := g.Generate(context.Background(), "")
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	calls := 0
	g := newTestGenerator(config.LLMConfig{ModelName: "m", MaxRetries: 3},
		func(_ context.Context, prompt string) (string, error) {
			calls++
			assert.Equal(t, "the prompt", prompt)
			return "a,b,c,d\n", nil
		})

	text, err := g.Generate(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "a,b,c,d\n", text)
	assert.Equal(t, 1, calls)
}

func TestGenerate_PermanentErrorNotRetried(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []error{generation.ErrContentBlocked, generation.ErrInvalidResponse} {
		calls := 0
		g := newTestGenerator(config.LLMConfig{ModelName: "m", MaxRetries: 5},
			func(context.Context, string) (string, error) {
				calls++
				return "", fmt.Errorf("%w: nope", sentinel)
			})

		_, err := g.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, 1, calls, "permanent error must not be retried")
	}
}

func TestGenerate_TransientErrorRetriedUntilSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	g := newTestGenerator(config.LLMConfig{ModelName: "m", MaxRetries: 2, RetryDelaySeconds: 1},
		func(context.Context, string) (string, error) {
			calls++
			if calls < 2 {
				return "", errors.New("connection reset")
			}
			return "ok", nil
		})

	text, err := g.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 2, calls)
}

func TestGenerate_TransientErrorExhaustsRetries(t *testing.T) {
	t.Parallel()

	calls := 0
	g := newTestGenerator(config.LLMConfig{ModelName: "m", MaxRetries: 0},
		func(context.Context, string) (string, error) {
			calls++
			return "", errors.New("connection reset")
		})

	_, err := g.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, generation.ErrTransientFailure)
	assert.Equal(t, 1, calls)
}

func TestGenerate_CancelledDuringRetryDelay(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := newTestGenerator(config.LLMConfig{ModelName: "m", MaxRetries: 3, RetryDelaySeconds: 1},
		func(context.Context, string) (string, error) {
			return "", errors.New("connection reset")
		})

	_, err := g.Generate(ctx, "p")
	assert.ErrorIs(t, err, generation.ErrTransientFailure)
	assert.Contains(t, err.Error(), context.Canceled.Error())
}
