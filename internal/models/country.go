package models

// Country is the top of the geography hierarchy. Deleting a country
// cascades through cities, airports, routes, flights and tickets.
type Country struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:varchar(64);not null"`
}

// TableName specifies the table name for GORM
func (Country) TableName() string {
	return "countries"
}
