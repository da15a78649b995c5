package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

// ListRequests lists one website form-submission inbox.
func (c *Client) ListRequests(ctx context.Context, kind domain.RequestKind, q ListQuery) ([]domain.Request, int, error) {
	if !kind.Valid() {
		return nil, 0, fmt.Errorf("api: unknown request kind %q", kind)
	}
	raw, err := c.get(ctx, "/admin/requests/"+string(kind), q.Values())
	if err != nil {
		return nil, 0, err
	}
	out := []domain.Request{}
	decodeList(raw, &out, "requests", "submissions")
	pages, _ := findInt(raw, "pages", "totalPages", "total_pages")
	return out, pages, nil
}

func (c *Client) GetRequest(ctx context.Context, kind domain.RequestKind, id int64) (domain.Request, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/admin/requests/%s/%d", kind, id), nil)
	if err != nil {
		return domain.Request{}, err
	}
	var out domain.Request
	err = decodeRecord(raw, &out, "request", "submission")
	return out, err
}

// MarkRequestRead flags a submission as handled. The endpoint is optional on
// older backends; a 404 is treated as "feature not available" and ignored.
func (c *Client) MarkRequestRead(ctx context.Context, kind domain.RequestKind, id int64) error {
	_, err := c.sendJSON(ctx, http.MethodPut,
		fmt.Sprintf("/admin/requests/%s/%d/read", kind, id), nil)
	if IsNotFound(err) {
		return nil
	}
	return err
}

func (c *Client) DeleteRequest(ctx context.Context, kind domain.RequestKind, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/requests/%s/%d", kind, id))
}
