package models

// Airport is identified to clients by its 3-letter IATA-style code,
// stored uppercase.
type Airport struct {
	ID               int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name             string `gorm:"column:name;type:varchar(64);not null"`
	Code             string `gorm:"column:code;type:varchar(3);not null"`
	ClosestBigCityID int64  `gorm:"column:closest_big_city_id;not null;index"`

	ClosestBigCity City `gorm:"foreignKey:ClosestBigCityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
