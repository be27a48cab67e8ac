package server

import (
	"github.com/gofiber/fiber/v2"
)

type handlers struct {
	m *Manager
}

type moveRequest struct {
	Move string `json:"move"`
}

type nameRequest struct {
	Name string `json:"name"`
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}

// failWithState reports an error along with the session state, which is
// unchanged by a rejected move.
func failWithState(c *fiber.Ctx, err error, st State) error {
	if st.ID == "" {
		return fail(c, err)
	}
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error(), "game": st})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body: " + err.Error()})
}

func (h *handlers) create(c *fiber.Ctx) error {
	st, err := h.m.Create()
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

func (h *handlers) list(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"games": h.m.List()})
}

func (h *handlers) get(c *fiber.Ctx) error {
	st, err := h.m.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(st)
}

func (h *handlers) delete(c *fiber.Ctx) error {
	if err := h.m.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *handlers) move(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	st, err := h.m.Move(c.Params("id"), req.Move)
	if err != nil {
		return failWithState(c, err, st)
	}
	return c.JSON(st)
}

func (h *handlers) reset(c *fiber.Ctx) error {
	st, err := h.m.Reset(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(st)
}

func (h *handlers) save(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	st, err := h.m.Save(c.Params("id"), req.Name)
	if err != nil {
		return failWithState(c, err, st)
	}
	return c.JSON(st)
}

func (h *handlers) load(c *fiber.Ctx) error {
	var req nameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	st, err := h.m.Load(c.Params("id"), req.Name)
	if err != nil {
		return failWithState(c, err, st)
	}
	return c.JSON(st)
}

func (h *handlers) saves(c *fiber.Ctx) error {
	names, err := h.m.Saves()
	if err != nil {
		return fail(c, err)
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(fiber.Map{"saves": names})
}
