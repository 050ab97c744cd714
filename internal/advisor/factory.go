package advisor

import (
	"context"
	"fmt"
	"os"

	"github.com/mbuckley/feprep/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware.
func NewProvider(ctx context.Context, cfg Config, repo store.AdvisoryRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown advisory provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base.
	logged := WithLogging(base, repo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from FEPREP_* environment variables,
// falling back to probing the standard API key variables when no provider
// is explicitly selected.
func NewProviderFromEnv(ctx context.Context, repo store.AdvisoryRepo) (Provider, error) {
	cfg := ConfigFromEnv()

	if os.Getenv("FEPREP_ADVISOR_PROVIDER") == "" {
		if discovered, ok := DiscoverConfig(); ok {
			cfg = discovered
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, repo)
}
