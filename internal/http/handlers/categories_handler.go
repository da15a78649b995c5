package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/catalog"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/validate"
)

type CategoriesHandler struct {
	Client *api.Client
}

// subcategoryNode is a subcategory with its nested children attached.
type subcategoryNode struct {
	domain.Subcategory
	Children []domain.Subcategory `json:"children"`
}

// List returns all categories; with ?tree=1 each category also carries its
// subcategory tree (top-level entries split from nested via classification).
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.Client.Categories(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	if c.Query("tree") == "" {
		return c.JSON(fiber.Map{"categories": categories})
	}

	type categoryNode struct {
		domain.Category
		Subcategories []subcategoryNode `json:"subcategories"`
	}
	tree := make([]categoryNode, 0, len(categories))
	for _, cat := range categories {
		node := categoryNode{Category: cat, Subcategories: []subcategoryNode{}}
		subs, serr := h.Client.SubcategoriesByCategory(c.Context(), cat.ID.Int64())
		if serr != nil {
			// Partial tree beats no tree; the branch renders empty.
			tree = append(tree, node)
			continue
		}
		byParent := map[int64][]domain.Subcategory{}
		var top []domain.Subcategory
		for _, sub := range subs {
			if cl := catalog.Classify(sub); cl.TopLevel {
				top = append(top, sub)
			} else {
				byParent[cl.ParentID] = append(byParent[cl.ParentID], sub)
			}
		}
		for _, sub := range top {
			children := byParent[sub.ID.Int64()]
			if children == nil {
				// The list endpoint may omit nested rows; ask explicitly.
				if nested, nerr := h.Client.NestedSubcategories(c.Context(), sub.ID.Int64()); nerr == nil {
					children = nested
				}
			}
			if children == nil {
				children = []domain.Subcategory{}
			}
			node.Subcategories = append(node.Subcategories, subcategoryNode{Subcategory: sub, Children: children})
		}
		tree = append(tree, node)
	}
	return c.JSON(fiber.Map{"categories": tree})
}

func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	in, ok := h.categoryFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Category name is required.")
	}
	cat, err := h.Client.CreateCategory(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"category": cat})
}

func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad category id.")
	}
	in, ok := h.categoryFromBody(c)
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Category name is required.")
	}
	cat, err := h.Client.UpdateCategory(c.Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"category": cat})
}

func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad category id.")
	}
	if err := h.Client.DeleteCategory(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *CategoriesHandler) categoryFromBody(c *fiber.Ctx) (api.CategoryInput, bool) {
	var in api.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	name, ok := validate.Text(in.Name, 120)
	if !ok {
		return in, false
	}
	in.Name = name
	if in.Slug == "" {
		in.Slug = slug.Make(name)
	}
	if _, ok := validate.Slug(in.Slug); !ok {
		return in, false
	}
	return in, true
}

// Subcategory CRUD shares this handler; the screen nests under categories.

func (h *CategoriesHandler) CreateSubcategory(c *fiber.Ctx) error {
	var in api.SubcategoryInput
	if err := c.BodyParser(&in); err != nil || in.CategoryID <= 0 {
		return toast(c, fiber.StatusBadRequest, "validation", "Name and category are required.")
	}
	if _, ok := validate.Text(in.Name, 120); !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Name and category are required.")
	}
	sub, err := h.Client.CreateSubcategory(c.Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"subcategory": sub})
}

func (h *CategoriesHandler) UpdateSubcategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad subcategory id.")
	}
	var in api.SubcategoryInput
	if err := c.BodyParser(&in); err != nil || in.CategoryID <= 0 {
		return toast(c, fiber.StatusBadRequest, "validation", "Name and category are required.")
	}
	sub, err := h.Client.UpdateSubcategory(c.Context(), id, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"subcategory": sub})
}

func (h *CategoriesHandler) DeleteSubcategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad subcategory id.")
	}
	if err := h.Client.DeleteSubcategory(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
