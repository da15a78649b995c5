package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/validate"
)

type BannersHandler struct {
	Client *api.Client
}

func (h *BannersHandler) List(c *fiber.Ctx) error {
	banners, pages, err := h.Client.ListBanners(c.Context(), listQuery(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"banners": banners, "total_pages": pages})
}

func (h *BannersHandler) Create(c *fiber.Ctx) error {
	in, ok := h.bannerFromForm(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Title is required and the image must be jpeg/png/webp.")
	}
	b, err := h.Client.CreateBanner(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"banner": b})
}

func (h *BannersHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad banner id.")
	}
	in, ok := h.bannerFromForm(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Title is required and the image must be jpeg/png/webp.")
	}
	b, err := h.Client.UpdateBanner(c.Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"banner": b})
}

func (h *BannersHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad banner id.")
	}
	if err := h.Client.DeleteBanner(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *BannersHandler) bannerFromForm(c *fiber.Ctx) (api.BannerInput, bool) {
	title, ok := validate.Text(c.FormValue("title"), 200)
	if !ok {
		return api.BannerInput{}, false
	}
	position, _ := strconv.Atoi(c.FormValue("position"))
	in := api.BannerInput{
		Title:    title,
		Subtitle: c.FormValue("subtitle"),
		LinkURL:  c.FormValue("link_url"),
		Position: position,
		Active:   c.FormValue("is_active") != "0",
	}
	up, ok := formImage(c, "image")
	if !ok {
		return api.BannerInput{}, false
	}
	in.Image = up
	return in, true
}

// formImage pulls an optional single image out of a multipart form. The
// second return is false only when a file was sent with a bad content type.
func formImage(c *fiber.Ctx, field string) (*api.Upload, bool) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil, true // no file attached
	}
	if !validate.ImageContentType(fh.Header.Get("Content-Type")) {
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		return nil, false
	}
	return &api.Upload{
		Field:       field,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Reader:      f,
	}, true
}

func listQuery(c *fiber.Ctx) api.ListQuery {
	q := api.ListQuery{Page: validate.Page(c.Query("page", "1"))}
	if s, ok := validate.Q(c.Query("search")); ok {
		q.Search = s
	}
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 && n <= 100 {
		q.Limit = n
	}
	return q
}
