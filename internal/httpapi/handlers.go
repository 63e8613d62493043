package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/katalvlaran/graphtutor/builder"
	"github.com/katalvlaran/graphtutor/exercise"
	"github.com/katalvlaran/graphtutor/internal/session"
	"github.com/katalvlaran/graphtutor/traversal"
	"github.com/katalvlaran/graphtutor/tutorial"
)

type algorithmRequest struct {
	Algorithm string `json:"algorithm"`
}

type startRequest struct {
	Start *int `json:"start"`
}

type seekRequest struct {
	Index *int `json:"index"`
}

type chatRequest struct {
	Question string `json:"question"`
}

type exerciseRequest struct {
	Kind string `json:"kind"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// bind decodes the JSON body into dst, mapping failures to 400.
func bind(c fiber.Ctx, dst any) error {
	if err := c.Bind().JSON(dst); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}

	return nil
}

func (h *handler) presets(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"presets": builder.PresetNames()})
}

func (h *handler) algorithmText(c fiber.Ctx) error {
	alg, err := traversal.ParseAlgorithm(c.Params("alg"))
	if err != nil {
		return fiber.NewError(http.StatusNotFound, err.Error())
	}
	text, err := tutorial.Algorithm(alg)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"algorithm": alg, "title": alg.Title(), "markdown": text})
}

func (h *handler) conceptList(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"concepts": tutorial.Concepts()})
}

func (h *handler) conceptText(c fiber.Ctx) error {
	name := c.Params("name")
	text, err := tutorial.Concept(name)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"concept": strings.ToLower(name), "markdown": text})
}

func (h *handler) state(c fiber.Ctx) error {
	return c.JSON(h.sess.State())
}

func (h *handler) newGraph(c fiber.Ctx) error {
	var req session.GraphRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.sess.NewGraph(req); err != nil {
		return err
	}
	h.logger.Info("graph replaced", "nodes", req.Nodes, "preset", req.Preset, "edges", len(req.Edges))

	return c.Status(http.StatusCreated).JSON(h.sess.State())
}

func (h *handler) setAlgorithm(c fiber.Ctx) error {
	var req algorithmRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	alg, err := traversal.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return err
	}
	if err := h.sess.SetAlgorithm(alg); err != nil {
		return err
	}

	return c.JSON(h.sess.State())
}

func (h *handler) setStart(c fiber.Ctx) error {
	var req startRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Start == nil {
		return fmt.Errorf("%w: missing start", errInvalidBody)
	}
	if err := h.sess.SetStart(*req.Start); err != nil {
		return err
	}

	return c.JSON(h.sess.State())
}

func (h *handler) analysis(c fiber.Ctx) error {
	report, err := h.sess.Analysis(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(report)
}

func (h *handler) steps(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"algorithm": h.sess.Algorithm(), "steps": h.sess.Steps()})
}

func (h *handler) currentStep(c fiber.Ctx) error {
	return c.JSON(h.sess.Current())
}

func (h *handler) seek(c fiber.Ctx) error {
	var req seekRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Index == nil {
		return fmt.Errorf("%w: missing index", errInvalidBody)
	}
	cur, err := h.sess.Seek(*req.Index)
	if err != nil {
		return err
	}

	return c.JSON(cur)
}

func (h *handler) next(c fiber.Ctx) error  { return c.JSON(h.sess.Next()) }
func (h *handler) prev(c fiber.Ctx) error  { return c.JSON(h.sess.Prev()) }
func (h *handler) reset(c fiber.Ctx) error { return c.JSON(h.sess.Reset()) }

func (h *handler) explanation(c fiber.Ctx) error {
	cur := h.sess.Current()
	text := h.sess.Explain(c.Context())

	return c.JSON(fiber.Map{"step": cur.Index, "total": cur.Total, "explanation": text})
}

func (h *handler) history(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"history": h.sess.History()})
}

func (h *handler) chat(c fiber.Ctx) error {
	var req chatRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	reply, err := h.sess.Ask(c.Context(), req.Question)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"reply": reply, "history": h.sess.History()})
}

func (h *handler) clearChat(c fiber.Ctx) error {
	h.sess.ClearHistory()

	return c.SendStatus(http.StatusNoContent)
}

func (h *handler) currentExercise(c fiber.Ctx) error {
	ex, ok := h.sess.Exercise()
	if !ok {
		return fiber.NewError(http.StatusNotFound, "exercise mode is off")
	}

	return c.JSON(ex)
}

func (h *handler) newExercise(c fiber.Ctx) error {
	var req exerciseRequest
	if len(c.Body()) > 0 {
		if err := bind(c, &req); err != nil {
			return err
		}
	}

	var kind exercise.Kind
	if req.Kind != "" {
		k, err := exercise.ParseKind(req.Kind)
		if err != nil {
			return err
		}
		kind = k
	}
	ex, err := h.sess.NewExercise(kind)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(ex)
}

func (h *handler) stopExercise(c fiber.Ctx) error {
	h.sess.StopExercise()

	return c.SendStatus(http.StatusNoContent)
}

func (h *handler) answer(c fiber.Ctx) error {
	var req answerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return c.JSON(h.sess.CheckAnswer(req.Answer))
}
