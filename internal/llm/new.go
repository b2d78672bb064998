package llm

import (
	"sync"

	"github.com/jnxjent/gijiro3/internal/logger"
)

type implGenerator struct {
	apiKeys []string
	logger  logger.Logger
	model   string

	// One Generator is shared by every fan-out goroutine, so the
	// rotation index must be guarded.
	mu         sync.Mutex
	currentKey int
}

// New creates a Generator that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Generator {
	return &implGenerator{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
}
