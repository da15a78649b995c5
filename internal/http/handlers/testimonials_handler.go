package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/validate"
)

type TestimonialsHandler struct {
	Client *api.Client
}

func (h *TestimonialsHandler) List(c *fiber.Ctx) error {
	items, pages, err := h.Client.ListTestimonials(c.Context(), listQuery(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"testimonials": items, "total_pages": pages})
}

func (h *TestimonialsHandler) Create(c *fiber.Ctx) error {
	in, ok := h.testimonialFromForm(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Name and message are required; image must be jpeg/png/webp.")
	}
	t, err := h.Client.CreateTestimonial(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"testimonial": t})
}

func (h *TestimonialsHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad testimonial id.")
	}
	in, ok := h.testimonialFromForm(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Name and message are required; image must be jpeg/png/webp.")
	}
	t, err := h.Client.UpdateTestimonial(c.Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"testimonial": t})
}

func (h *TestimonialsHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad testimonial id.")
	}
	if err := h.Client.DeleteTestimonial(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *TestimonialsHandler) testimonialFromForm(c *fiber.Ctx) (api.TestimonialInput, bool) {
	name, ok := validate.Text(c.FormValue("name"), 120)
	if !ok {
		return api.TestimonialInput{}, false
	}
	message, ok := validate.Text(c.FormValue("message"), 2000)
	if !ok {
		return api.TestimonialInput{}, false
	}
	in := api.TestimonialInput{
		Name:    name,
		Role:    c.FormValue("role"),
		Message: message,
		Rating:  validate.Rating(c.FormValue("rating")),
		Active:  c.FormValue("is_active") != "0",
	}
	up, ok := formImage(c, "image")
	if !ok {
		return api.TestimonialInput{}, false
	}
	in.Image = up
	return in, true
}
