package models

import "time"

type Order struct {
	ID            int         `json:"id"`
	OrderNumber   string      `json:"order_number"`
	UserID        int         `json:"user_id"`
	CustomerName  string      `json:"customer_name,omitempty"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	CustomerEmail string      `json:"customer_email,omitempty"`
	TotalAmount   int         `json:"total_amount"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID           int    `json:"id"`
	OrderID      int    `json:"order_id"`
	PerfumeID    string `json:"perfume_id"`
	PerfumeName  string `json:"perfume_name"`
	PerfumeBrand string `json:"perfume_brand"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int    `json:"unit_price"`
	InStock      bool   `json:"in_stock"`
}

var OrderStatuses = []string{"pending", "confirmed", "shipped", "delivered", "cancelled"}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// HasBackorder reports whether any line was out of stock when the order
// was placed.
func (o *Order) HasBackorder() bool {
	for _, item := range o.Items {
		if !item.InStock {
			return true
		}
	}
	return false
}
