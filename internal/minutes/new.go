package minutes

import (
	"github.com/jnxjent/gijiro3/internal/config"
	"github.com/jnxjent/gijiro3/internal/document"
	"github.com/jnxjent/gijiro3/internal/keywords"
	"github.com/jnxjent/gijiro3/internal/llm"
	"github.com/jnxjent/gijiro3/internal/logger"
	"github.com/jnxjent/gijiro3/internal/media"
	"github.com/jnxjent/gijiro3/internal/storage"
	"github.com/jnxjent/gijiro3/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	media       media.Media
	transcriber transcriber.Transcriber
	generator   llm.Generator
	keywords    keywords.Repository
	template    document.Template
	storage     storage.Storage
	logger      logger.Logger
}

// New creates a Pipeline wired to its collaborators
func New(
	cfg *config.Config,
	med media.Media,
	tr transcriber.Transcriber,
	gen llm.Generator,
	kw keywords.Repository,
	tpl document.Template,
	st storage.Storage,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		media:       med,
		transcriber: tr,
		generator:   gen,
		keywords:    kw,
		template:    tpl,
		storage:     st,
		logger:      log,
	}
}
