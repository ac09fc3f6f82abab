package models

type City struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;type:varchar(64);not null"`
	CountryID int64  `gorm:"column:country_id;not null;index"`

	Country Country `gorm:"foreignKey:CountryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (City) TableName() string {
	return "cities"
}
