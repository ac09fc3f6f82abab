package models

// Route connects two airports. Distance is stored in kilometers.
type Route struct {
	ID            int64 `gorm:"column:id;primaryKey;autoIncrement"`
	SourceID      int64 `gorm:"column:source_id;not null;index"`
	DestinationID int64 `gorm:"column:destination_id;not null;index"`
	Distance      int   `gorm:"column:distance;not null"`

	Source      Airport `gorm:"foreignKey:SourceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Destination Airport `gorm:"foreignKey:DestinationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Route) TableName() string {
	return "routes"
}
