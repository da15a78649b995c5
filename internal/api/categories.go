package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

// Categories lists all categories (flat, no hierarchy).
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	raw, err := c.get(ctx, "/categories", nil)
	if err != nil {
		return nil, err
	}
	out := []domain.Category{}
	decodeList(raw, &out, "categories")
	return out, nil
}

// SubcategoriesByCategory lists the direct subcategories of one category.
func (c *Client) SubcategoriesByCategory(ctx context.Context, categoryID int64) ([]domain.Subcategory, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/categories/%d/subcategories", categoryID), nil)
	if err != nil {
		return nil, err
	}
	out := []domain.Subcategory{}
	decodeList(raw, &out, "subcategories", "sub_categories")
	return out, nil
}

// NestedSubcategories lists the children of a subcategory via the
// parent-keyed endpoint.
func (c *Client) NestedSubcategories(ctx context.Context, parentID int64) ([]domain.Subcategory, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/subcategories/%d/nested", parentID), nil)
	if err != nil {
		return nil, err
	}
	out := []domain.Subcategory{}
	decodeList(raw, &out, "subcategories", "sub_categories", "children")
	return out, nil
}

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (domain.Category, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, "/categories", in)
	if err != nil {
		return domain.Category{}, err
	}
	var out domain.Category
	err = decodeRecord(raw, &out, "category")
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (domain.Category, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), in)
	if err != nil {
		return domain.Category{}, err
	}
	var out domain.Category
	err = decodeRecord(raw, &out, "category")
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/categories/%d", id))
}

// SubcategoryInput carries the writable subcategory fields; ParentID non-nil
// makes it a nested (sub-sub) category.
type SubcategoryInput struct {
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
	ParentID   *int64 `json:"parent_id,omitempty"`
}

func (c *Client) CreateSubcategory(ctx context.Context, in SubcategoryInput) (domain.Subcategory, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, "/subcategories", in)
	if err != nil {
		return domain.Subcategory{}, err
	}
	var out domain.Subcategory
	err = decodeRecord(raw, &out, "subcategory", "sub_category")
	return out, err
}

func (c *Client) UpdateSubcategory(ctx context.Context, id int64, in SubcategoryInput) (domain.Subcategory, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/subcategories/%d", id), in)
	if err != nil {
		return domain.Subcategory{}, err
	}
	var out domain.Subcategory
	err = decodeRecord(raw, &out, "subcategory", "sub_category")
	return out, err
}

func (c *Client) DeleteSubcategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/subcategories/%d", id))
}
