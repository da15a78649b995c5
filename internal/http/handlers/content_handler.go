package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/validate"
)

// FAQ and static-page screens; both are plain JSON CRUD over small records.

type FAQsHandler struct {
	Client *api.Client
}

func (h *FAQsHandler) List(c *fiber.Ctx) error {
	faqs, pages, err := h.Client.ListFAQs(c.Context(), listQuery(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"faqs": faqs, "total_pages": pages})
}

func (h *FAQsHandler) Create(c *fiber.Ctx) error {
	in, ok := h.faqFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Question and answer are required.")
	}
	f, err := h.Client.CreateFAQ(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"faq": f})
}

func (h *FAQsHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad faq id.")
	}
	in, ok := h.faqFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Question and answer are required.")
	}
	f, err := h.Client.UpdateFAQ(c.Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"faq": f})
}

func (h *FAQsHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad faq id.")
	}
	if err := h.Client.DeleteFAQ(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *FAQsHandler) faqFromBody(c *fiber.Ctx) (api.FAQInput, bool) {
	var in api.FAQInput
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	if _, ok := validate.Text(in.Question, 500); !ok {
		return in, false
	}
	if _, ok := validate.Text(in.Answer, 10000); !ok {
		return in, false
	}
	return in, true
}

type PagesHandler struct {
	Client *api.Client
}

func (h *PagesHandler) List(c *fiber.Ctx) error {
	pagesList, total, err := h.Client.ListPages(c.Context(), listQuery(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"pages": pagesList, "total_pages": total})
}

func (h *PagesHandler) Create(c *fiber.Ctx) error {
	in, ok := h.pageFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Title and body are required.")
	}
	p, err := h.Client.CreatePage(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"page": p})
}

func (h *PagesHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad page id.")
	}
	in, ok := h.pageFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Title and body are required.")
	}
	p, err := h.Client.UpdatePage(c.Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"page": p})
}

func (h *PagesHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad page id.")
	}
	if err := h.Client.DeletePage(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *PagesHandler) pageFromBody(c *fiber.Ctx) (api.PageInput, bool) {
	var in api.PageInput
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	title, ok := validate.Text(in.Title, 200)
	if !ok {
		return in, false
	}
	in.Title = title
	if _, ok := validate.Text(in.Body, 200000); !ok {
		return in, false
	}
	if in.Slug == "" {
		in.Slug = slug.Make(title)
	}
	if _, ok := validate.Slug(in.Slug); !ok {
		return in, false
	}
	return in, true
}
