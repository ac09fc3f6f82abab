package models

import "time"

// Order groups the tickets bought by one user in one purchase.
// CreatedAt is server-assigned and immutable.
type Order struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UserID    int64     `gorm:"column:user_id;not null;index"`

	User    User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Tickets []Ticket `gorm:"foreignKey:OrderID"`
}

// TableName specifies the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// Ticket pins one seat on one flight to an order. The composite unique
// index keeps a seat from being sold twice on the same flight.
type Ticket struct {
	ID       int64 `gorm:"column:id;primaryKey;autoIncrement"`
	Row      int   `gorm:"column:row;not null;uniqueIndex:idx_ticket_flight_seat"`
	Seat     int   `gorm:"column:seat;not null;uniqueIndex:idx_ticket_flight_seat"`
	FlightID int64 `gorm:"column:flight_id;not null;uniqueIndex:idx_ticket_flight_seat"`
	OrderID  int64 `gorm:"column:order_id;not null;index"`

	Flight Flight `gorm:"foreignKey:FlightID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Order  Order  `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Ticket) TableName() string {
	return "tickets"
}
