package models

type Crew struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName string `gorm:"column:first_name;type:varchar(64);not null"`
	LastName  string `gorm:"column:last_name;type:varchar(64);not null"`
}

// TableName specifies the table name for GORM
func (Crew) TableName() string {
	return "crew"
}

// FullName returns the display name of a crew member.
func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}
