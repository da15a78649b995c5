package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	applog "github.com/hafizsameer11/optyshop-admin-sub000/internal/log"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/validate"
)

type UsersHandler struct {
	Client *api.Client
}

func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, pages, err := h.Client.ListUsers(c.Context(), listQuery(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"users": users, "total_pages": pages})
}

func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad user id.")
	}
	var in api.UserInput
	if err := c.BodyParser(&in); err != nil {
		return toast(c, fiber.StatusBadRequest, "validation", "Name and a valid email are required.")
	}
	if _, ok := validate.Text(in.Name, 120); !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Name and a valid email are required.")
	}
	if _, ok := validate.Email(in.Email); !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Name and a valid email are required.")
	}
	u, err := h.Client.UpdateUser(c.Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"user": u})
}

func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad user id.")
	}
	if err := h.Client.DeleteUser(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	applog.Audit(c, "users.delete", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"ok": true})
}
