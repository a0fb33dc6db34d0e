package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Scoring
	ScoreHandler          Handler
	ScoreUnlabeledHandler Handler
	SimilarityHandler     Handler

	// Jobs
	CreateJobHandler    Handler
	GetJobHandler       Handler
	GetJobResultHandler Handler

	GetVersionHandler Handler
}
