package router

import (
	"errors"
	"fmt"

	handlers "github.com/NeuralTrust/TrustIntent/pkg/handlers/http"
	"github.com/NeuralTrust/TrustIntent/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

var (
	ErrInvalidHandlerTransport = errors.New("invalid handler transport")
)

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
	swaggerURL          string
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
	port int,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		swaggerURL:          fmt.Sprintf("http://localhost:%d/swagger.json", port),
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h == nil {
		return ErrInvalidHandlerTransport
	}

	router.Static("/swagger.json", "./docs/swagger.json")

	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: r.swaggerURL,
	}))

	router.Get("/version", h.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		if r.middlewareTransport != nil && len(r.middlewareTransport.Middlewares) > 0 {
			v1.Use(r.middlewareTransport.GetMiddlewares()...)
		}

		scores := v1.Group("/scores")
		{
			scores.Post("", h.ScoreHandler.Handle)
			scores.Post("/unlabeled", h.ScoreUnlabeledHandler.Handle)
		}

		v1.Post("/similarity", h.SimilarityHandler.Handle)

		jobs := v1.Group("/jobs")
		{
			jobs.Post("", h.CreateJobHandler.Handle)
			jobs.Get("/:job_id", h.GetJobHandler.Handle)
			jobs.Get("/:job_id/result", h.GetJobResultHandler.Handle)
		}
	}
	return nil
}
