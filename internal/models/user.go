package models

import "time"

// User rows are owned by the identity service; this API only reads them
// to resolve order ownership and the nested user representation.
type User struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	IsStaff   bool      `gorm:"column:is_staff;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
