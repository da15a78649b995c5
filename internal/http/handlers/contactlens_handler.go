package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/validate"
)

var lensKinds = map[string]bool{"spherical": true, "astigmatism": true}

type ContactLensHandler struct {
	Client *api.Client
}

func (h *ContactLensHandler) ListConfigs(c *fiber.Ctx) error {
	configs, pages, err := h.Client.ListContactLensConfigs(c.Context(), listQuery(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"configs": configs, "total_pages": pages})
}

func (h *ContactLensHandler) CreateConfig(c *fiber.Ctx) error {
	in, ok := h.configFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Name, category and lens kind are required.")
	}
	cfg, err := h.Client.CreateContactLensConfig(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"config": cfg})
}

func (h *ContactLensHandler) UpdateConfig(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad config id.")
	}
	in, ok := h.configFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Name, category and lens kind are required.")
	}
	cfg, err := h.Client.UpdateContactLensConfig(c.Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"config": cfg})
}

func (h *ContactLensHandler) DeleteConfig(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad config id.")
	}
	if err := h.Client.DeleteContactLensConfig(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *ContactLensHandler) configFromBody(c *fiber.Ctx) (api.ContactLensConfigInput, bool) {
	var in api.ContactLensConfigInput
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	if _, ok := validate.Text(in.Name, 200); !ok {
		return in, false
	}
	if in.CategoryID <= 0 || !lensKinds[in.LensKind] {
		return in, false
	}
	return in, true
}

func (h *ContactLensHandler) GetForm(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if !lensKinds[kind] {
		return toast(c, fiber.StatusNotFound, "not_found", "Unknown lens form.")
	}
	form, err := h.Client.GetContactLensForm(c.Context(), kind)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"form": form})
}

func (h *ContactLensHandler) UpdateForm(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if !lensKinds[kind] {
		return toast(c, fiber.StatusNotFound, "not_found", "Unknown lens form.")
	}
	var in domain.ContactLensForm
	if err := c.BodyParser(&in); err != nil || len(in.Powers) == 0 {
		return toast(c, fiber.StatusBadRequest, "validation", "At least one power value is required.")
	}
	in.Kind = kind
	form, err := h.Client.UpdateContactLensForm(c.Context(), kind, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"form": form})
}
