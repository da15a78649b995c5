package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	applog "github.com/hafizsameer11/optyshop-admin-sub000/internal/log"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/validate"
)

// orderStatuses is the lifecycle the console may move an order through.
var orderStatuses = map[string]bool{
	"pending":    true,
	"processing": true,
	"shipped":    true,
	"delivered":  true,
	"cancelled":  true,
	"refunded":   true,
}

type OrdersHandler struct {
	Client *api.Client
}

func (h *OrdersHandler) List(c *fiber.Ctx) error {
	q := api.OrderQuery{ListQuery: listQuery(c)}
	if s := c.Query("status"); s != "" && orderStatuses[s] {
		q.Status = s
	}
	orders, pages, err := h.Client.ListOrders(c.Context(), q)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"orders": orders, "total_pages": pages})
}

func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad order id.")
	}
	o, err := h.Client.GetOrder(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"order": o})
}

func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "Bad order id.")
	}
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil || !orderStatuses[in.Status] {
		return toast(c, fiber.StatusBadRequest, "validation", "Unknown order status.")
	}
	o, err := h.Client.UpdateOrderStatus(c.Context(), id, in.Status)
	if err != nil {
		return respondErr(c, err)
	}
	applog.Audit(c, "orders.status", map[string]any{"order_id": id, "status": in.Status})
	return c.JSON(fiber.Map{"order": o})
}
