package discord

import (
	"turfbot/internal/application"
	"turfbot/internal/ports/input"
	"turfbot/internal/ports/output"
	"turfbot/pkg/logger"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	router     *application.InteractionRouter
	events     input.EventUseCase
	creation   input.CreationUseCase
	translator output.Translator
	log        logger.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	router *application.InteractionRouter,
	events input.EventUseCase,
	creation input.CreationUseCase,
	translator output.Translator,
	log logger.Logger,
) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		router:     router,
		events:     events,
		creation:   creation,
		translator: translator,
		log:        log,
	}
}
