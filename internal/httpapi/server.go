package httpapi

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/katalvlaran/graphtutor/internal/session"
)

// handler serves one session.
type handler struct {
	sess   *session.Session
	logger *slog.Logger
}

// New builds the fiber application for sess.
func New(sess *session.Session, logger *slog.Logger) *fiber.App {
	if logger == nil {
		logger = slog.Default()
	}
	h := &handler{sess: sess, logger: logger}

	app := fiber.New(fiber.Config{
		AppName:      "graphtutor",
		ErrorHandler: h.errorHandler,
	})
	app.Use(h.logRequests)

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "session": sess.ID()})
	})
	app.Get("/presets", h.presets)

	tut := app.Group("/tutorial")
	tut.Get("/algorithms/:alg", h.algorithmText)
	tut.Get("/concepts", h.conceptList)
	tut.Get("/concepts/:name", h.conceptText)

	s := app.Group("/session")
	s.Get("/", h.state)
	s.Post("/graph", h.newGraph)
	s.Put("/algorithm", h.setAlgorithm)
	s.Put("/start", h.setStart)
	s.Get("/analysis", h.analysis)

	s.Get("/steps", h.steps)
	s.Get("/step", h.currentStep)
	s.Put("/step", h.seek)
	s.Post("/step/next", h.next)
	s.Post("/step/prev", h.prev)
	s.Post("/step/reset", h.reset)

	s.Get("/explanation", h.explanation)
	s.Get("/chat", h.history)
	s.Post("/chat", h.chat)
	s.Delete("/chat", h.clearChat)

	s.Get("/exercise", h.currentExercise)
	s.Post("/exercise", h.newExercise)
	s.Delete("/exercise", h.stopExercise)
	s.Post("/exercise/answer", h.answer)

	return app
}

func (h *handler) logRequests(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	h.logger.Debug("http request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
	)

	return err
}
