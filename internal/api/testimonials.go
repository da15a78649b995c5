package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

func (c *Client) ListTestimonials(ctx context.Context, q ListQuery) ([]domain.Testimonial, int, error) {
	raw, err := c.get(ctx, "/admin/testimonials", q.Values())
	if err != nil {
		return nil, 0, err
	}
	out := []domain.Testimonial{}
	decodeList(raw, &out, "testimonials")
	pages, _ := findInt(raw, "pages", "totalPages", "total_pages")
	return out, pages, nil
}

type TestimonialInput struct {
	Name    string
	Role    string
	Message string
	Rating  int
	Active  bool
	Image   *Upload
}

func (in TestimonialInput) fields() map[string]string {
	return map[string]string{
		"name":      in.Name,
		"role":      in.Role,
		"message":   in.Message,
		"rating":    strconv.Itoa(in.Rating),
		"is_active": boolField(in.Active),
	}
}

func (c *Client) CreateTestimonial(ctx context.Context, in TestimonialInput) (domain.Testimonial, error) {
	return c.saveTestimonial(ctx, http.MethodPost, "/admin/testimonials", in)
}

func (c *Client) UpdateTestimonial(ctx context.Context, id int64, in TestimonialInput) (domain.Testimonial, error) {
	return c.saveTestimonial(ctx, http.MethodPut, fmt.Sprintf("/admin/testimonials/%d", id), in)
}

func (c *Client) saveTestimonial(ctx context.Context, method, path string, in TestimonialInput) (domain.Testimonial, error) {
	var files []Upload
	if in.Image != nil {
		files = []Upload{*in.Image}
	}
	raw, err := c.sendMultipart(ctx, method, path, in.fields(), files)
	if err != nil {
		return domain.Testimonial{}, err
	}
	var out domain.Testimonial
	err = decodeRecord(raw, &out, "testimonial")
	return out, err
}

func (c *Client) DeleteTestimonial(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/testimonials/%d", id))
}
