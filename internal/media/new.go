package media

import (
	"time"

	"github.com/jnxjent/gijiro3/internal/logger"
	"github.com/jnxjent/gijiro3/pkg/executor"
)

type implMedia struct {
	toolchain    Toolchain
	executor     executor.Executor
	logger       logger.Logger
	remuxTimeout time.Duration
}

// New creates a new Media instance bound to a resolved toolchain
func New(tc Toolchain, exec executor.Executor, log logger.Logger, remuxTimeout time.Duration) Media {
	return &implMedia{
		toolchain:    tc,
		executor:     exec,
		logger:       log,
		remuxTimeout: remuxTimeout,
	}
}
