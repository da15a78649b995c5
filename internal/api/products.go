package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

// ProductQuery is the encoded filter set for the product listing. When
// CategoryIDs is set (section mode) one category_id parameter is appended per
// id and the single-value filters are left out; otherwise CategoryID and
// SubCategoryID pass through as manual dropdown filters.
type ProductQuery struct {
	CategoryIDs   []int64
	CategoryID    int64
	SubCategoryID int64
	Search        string
	Page          int
	Limit         int
}

func (q ProductQuery) Values() url.Values {
	v := url.Values{}
	if len(q.CategoryIDs) > 0 {
		for _, id := range q.CategoryIDs {
			v.Add("category_id", strconv.FormatInt(id, 10))
		}
	} else {
		if q.CategoryID > 0 {
			v.Set("category_id", strconv.FormatInt(q.CategoryID, 10))
		}
		if q.SubCategoryID > 0 {
			v.Set("sub_category_id", strconv.FormatInt(q.SubCategoryID, 10))
		}
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))
	return v
}

// ListProducts fetches one page of the admin product listing. TotalPages is
// consumed from the response as-is.
func (c *Client) ListProducts(ctx context.Context, q ProductQuery) (domain.ProductPage, error) {
	raw, err := c.get(ctx, "/admin/products", q.Values())
	if err != nil {
		return domain.ProductPage{}, err
	}
	page := domain.ProductPage{Products: []domain.Product{}, Page: q.Page}
	decodeList(raw, &page.Products, "products", "items")
	if n, ok := findInt(raw, "pages", "totalPages", "total_pages"); ok {
		page.TotalPages = n
	}
	return page, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/admin/products/%d", id), nil)
	if err != nil {
		return domain.Product{}, err
	}
	var out domain.Product
	err = decodeRecord(raw, &out, "product")
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, in domain.Product) (domain.Product, error) {
	raw, err := c.sendJSON(ctx, http.MethodPost, "/admin/products", in)
	if err != nil {
		return domain.Product{}, err
	}
	var out domain.Product
	err = decodeRecord(raw, &out, "product")
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in domain.Product) (domain.Product, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/products/%d", id), in)
	if err != nil {
		return domain.Product{}, err
	}
	var out domain.Product
	err = decodeRecord(raw, &out, "product")
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/products/%d", id))
}

// UploadProductImages attaches image files to a product via multipart PUT.
func (c *Client) UploadProductImages(ctx context.Context, id int64, files []Upload) (domain.Product, error) {
	raw, err := c.sendMultipart(ctx, http.MethodPut,
		fmt.Sprintf("/admin/products/%d/images", id), nil, files)
	if err != nil {
		return domain.Product{}, err
	}
	var out domain.Product
	err = decodeRecord(raw, &out, "product")
	return out, err
}
