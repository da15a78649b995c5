package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/validate"
)

// RequestsHandler serves the six website form-submission inboxes behind one
// :kind parameter.
type RequestsHandler struct {
	Client *api.Client
}

func requestKind(c *fiber.Ctx) (domain.RequestKind, bool) {
	kind := domain.RequestKind(c.Params("kind"))
	return kind, kind.Valid()
}

func (h *RequestsHandler) List(c *fiber.Ctx) error {
	kind, ok := requestKind(c)
	if !ok {
		return toast(c, fiber.StatusNotFound, "not_found", "Unknown inbox.")
	}
	items, pages, err := h.Client.ListRequests(c.Context(), kind, listQuery(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"requests": items, "total_pages": pages, "kind": string(kind)})
}

func (h *RequestsHandler) Get(c *fiber.Ctx) error {
	kind, ok := requestKind(c)
	if !ok {
		return toast(c, fiber.StatusNotFound, "not_found", "Unknown inbox.")
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad request id.")
	}
	r, err := h.Client.GetRequest(c.Context(), kind, id)
	if err != nil {
		return respondErr(c, err)
	}
	// Opening a submission marks it read; older backends without the
	// endpoint are tolerated inside the client.
	_ = h.Client.MarkRequestRead(c.Context(), kind, id)
	return c.JSON(fiber.Map{"request": r})
}

func (h *RequestsHandler) Delete(c *fiber.Ctx) error {
	kind, ok := requestKind(c)
	if !ok {
		return toast(c, fiber.StatusNotFound, "not_found", "Unknown inbox.")
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad request id.")
	}
	if err := h.Client.DeleteRequest(c.Context(), kind, id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
