package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

func (c *Client) ListUsers(ctx context.Context, q ListQuery) ([]domain.User, int, error) {
	raw, err := c.get(ctx, "/admin/users", q.Values())
	if err != nil {
		return nil, 0, err
	}
	out := []domain.User{}
	decodeList(raw, &out, "users")
	pages, _ := findInt(raw, "pages", "totalPages", "total_pages")
	return out, pages, nil
}

type UserInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role"`
	Active bool   `json:"is_active"`
}

func (c *Client) UpdateUser(ctx context.Context, id int64, in UserInput) (domain.User, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d", id), in)
	if err != nil {
		return domain.User{}, err
	}
	var out domain.User
	err = decodeRecord(raw, &out, "user")
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/users/%d", id))
}
