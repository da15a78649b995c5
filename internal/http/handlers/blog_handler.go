package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/validate"
)

type BlogHandler struct {
	Client *api.Client
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	posts, pages, err := h.Client.ListBlogPosts(c.Context(), listQuery(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts, "total_pages": pages})
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	in, ok := h.postFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Title and body are required.")
	}
	p, err := h.Client.CreateBlogPost(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": p})
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad post id.")
	}
	in, ok := h.postFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Title and body are required.")
	}
	p, err := h.Client.UpdateBlogPost(c.Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"post": p})
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad post id.")
	}
	if err := h.Client.DeleteBlogPost(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *BlogHandler) postFromBody(c *fiber.Ctx) (api.BlogPostInput, bool) {
	var in api.BlogPostInput
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	title, ok := validate.Text(in.Title, 200)
	if !ok {
		return in, false
	}
	in.Title = title
	if _, ok := validate.Text(in.Body, 100000); !ok {
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
