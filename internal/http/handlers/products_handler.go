package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/catalog"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/state"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/validate"
)

const productsScreen = "products"

type ProductsHandler struct {
	Client   *api.Client
	Console  *state.Console
	Resolver *catalog.Resolver
}

// List drives the product screen: section and manual filters in, resolved
// product page out. With no query parameters the screen's persisted state is
// restored, so the console reopens where the operator left it.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	f := h.filtersFromQuery(c)

	categories, err := h.Client.Categories(c.Context())
	if err != nil {
		return respondErr(c, err)
	}

	res, err := h.Resolver.Resolve(c.Context(), f, categories)
	if errors.Is(err, catalog.ErrSuperseded) {
		// A newer request owns the screen; this response must not land.
		return c.SendStatus(fiber.StatusConflict)
	}
	if err != nil {
		return respondErr(c, err)
	}

	_ = h.Console.SavePageState(productsScreen, state.PageState{
		Section:       string(f.Section),
		CategoryID:    f.CategoryID,
		SubCategoryID: f.SubCategoryID,
		Search:        f.Search,
		Page:          f.Page,
		TableVersion:  catalog.PatternTableVersion,
	})

	return c.JSON(fiber.Map{
		"products":                 res.Page.Products,
		"page":                     res.Page.Page,
		"total_pages":              res.Page.TotalPages,
		"section":                  string(f.Section),
		"section_category_ids":     res.SectionCategoryIDs,
		"section_sub_category_ids": res.SectionSubcategoryIDs,
		"ignored_filters":          res.IgnoredFilters,
	})
}

func (h *ProductsHandler) filtersFromQuery(c *fiber.Ctx) catalog.Filters {
	if len(c.Queries()) == 0 {
		if st, ok := h.Console.PageState(productsScreen); ok && st.TableVersion == catalog.PatternTableVersion {
			return catalog.Filters{
				Section:       domain.ParseSection(st.Section),
				CategoryID:    st.CategoryID,
				SubCategoryID: st.SubCategoryID,
				Search:        st.Search,
				Page:          st.Page,
			}
		}
	}

	f := catalog.Filters{
		Section: domain.ParseSection(c.Query("section", string(domain.SectionAll))),
		Page:    validate.Page(c.Query("page", "1")),
	}
	if q, ok := validate.Q(c.Query("search")); ok {
		f.Search = q
	}
	if id, ok := validate.ID(c.Query("category_id")); ok {
		f.CategoryID = id
	}
	if id, ok := validate.ID(c.Query("sub_category_id")); ok {
		f.SubCategoryID = id
	}
	return f
}

func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad product id.")
	}
	p, err := h.Client.GetProduct(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"product": p})
}

func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	in, ok := h.productFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Name, category and a non-negative price are required.")
	}
	p, err := h.Client.CreateProduct(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"product": p})
}

func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad product id.")
	}
	in, ok := h.productFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Name, category and a non-negative price are required.")
	}
	p, err := h.Client.UpdateProduct(c.Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"product": p})
}

func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad product id.")
	}
	if err := h.Client.DeleteProduct(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// UploadImages forwards multipart product images upstream after checking the
// declared content types locally.
func (h *ProductsHandler) UploadImages(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad product id.")
	}
	form, err := c.MultipartForm()
	if err != nil {
		return toast(c, fiber.StatusBadRequest, "validation", "Multipart form expected.")
	}
	var uploads []api.Upload
	for _, fh := range form.File["images"] {
		if !validate.ImageContentType(fh.Header.Get("Content-Type")) {
			return toast(c, fiber.StatusUnsupportedMediaType, "unsupported_media", "Unsupported image type.")
		}
		f, oerr := fh.Open()
		if oerr != nil {
			return toast(c, fiber.StatusBadRequest, "validation", "Unreadable upload.")
		}
		defer f.Close()
		uploads = append(uploads, api.Upload{
			Field:       "images",
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
		})
	}
	if len(uploads) == 0 {
		return toast(c, fiber.StatusBadRequest, "validation", "No images attached.")
	}
	p, err := h.Client.UploadProductImages(c.Context(), id, uploads)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"product": p})
}

func (h *ProductsHandler) productFromBody(c *fiber.Ctx) (domain.Product, bool) {
	var in domain.Product
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	if _, ok := validate.Text(in.Name, 200); !ok {
		return in, false
	}
	if !in.CategoryID.Valid() || in.Price.IsNegative() {
		return in, false
	}
	return in, true
}
