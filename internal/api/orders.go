package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

// OrderQuery extends the shared list parameters with a status filter.
type OrderQuery struct {
	ListQuery
	Status string
}

func (c *Client) ListOrders(ctx context.Context, q OrderQuery) ([]domain.Order, int, error) {
	v := q.Values()
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	raw, err := c.get(ctx, "/admin/orders", v)
	if err != nil {
		return nil, 0, err
	}
	out := []domain.Order{}
	decodeList(raw, &out, "orders")
	pages, _ := findInt(raw, "pages", "totalPages", "total_pages")
	return out, pages, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/admin/orders/%d", id), nil)
	if err != nil {
		return domain.Order{}, err
	}
	var out domain.Order
	err = decodeRecord(raw, &out, "order")
	return out, err
}

// UpdateOrderStatus moves an order through its lifecycle (the only order
// mutation the console performs).
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (domain.Order, error) {
	raw, err := c.sendJSON(ctx, http.MethodPut,
		fmt.Sprintf("/admin/orders/%d", id), map[string]string{"status": status})
	if err != nil {
		return domain.Order{}, err
	}
	var out domain.Order
	err = decodeRecord(raw, &out, "order")
	return out, err
}
