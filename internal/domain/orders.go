package domain

import "github.com/shopspring/decimal"

type OrderItem struct {
	ProductID FlexID          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  FlexID          `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type Order struct {
	ID            FlexID          `json:"id"`
	OrderNumber   FlexString      `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	Items         []OrderItem     `json:"items"`
	CreatedAt     string          `json:"created_at"`
}

type User struct {
	ID        FlexID     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     FlexString `json:"phone"`
	Role      string     `json:"role"`
	Active    FlexBool   `json:"is_active"`
	CreatedAt string     `json:"created_at"`
}

// Profile is the authenticated admin identity from /auth/me. Demo marks a
// pseudo-session manufactured when the backend is unreachable.
type Profile struct {
	ID    FlexID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Demo  bool   `json:"demo,omitempty"`
}
