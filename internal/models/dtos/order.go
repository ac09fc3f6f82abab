package dtos

import (
	"time"

	"skyward/airport-api/internal/models"
)

type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// OrderDetail is the flat variant used by retrieve and write responses.
type OrderDetail struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int64     `json:"user_id"`
}

func NewOrderDetail(m models.Order) OrderDetail {
	return OrderDetail{ID: m.ID, CreatedAt: m.CreatedAt, UserID: m.UserID}
}

// OrderListItem is the read-only list variant nesting the user summary.
type OrderListItem struct {
	ID        int64       `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	User      UserSummary `json:"user"`
}

// NewOrderListItem expects m.User to be preloaded.
func NewOrderListItem(m models.Order) OrderListItem {
	return OrderListItem{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		User:      UserSummary{ID: m.User.ID, Email: m.User.Email},
	}
}
