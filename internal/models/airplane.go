package models

// AirplaneType names are unique; the index backs the look-up-or-create
// path up against concurrent identical inserts.
type AirplaneType struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:varchar(64);not null;uniqueIndex"`
}

// TableName specifies the table name for GORM
func (AirplaneType) TableName() string {
	return "airplane_types"
}

// Airplane holds the seat grid; capacity is always derived from it and
// never stored.
type Airplane struct {
	ID             int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string  `gorm:"column:name;type:varchar(64);not null"`
	Rows           int     `gorm:"column:rows;not null"`
	SeatsInRow     int     `gorm:"column:seats_in_row;not null"`
	Image          *string `gorm:"column:image"`
	AirplaneTypeID int64   `gorm:"column:airplane_type_id;not null;index"`

	AirplaneType AirplaneType `gorm:"foreignKey:AirplaneTypeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Airplane) TableName() string {
	return "airplanes"
}

// Capacity returns the seat count of the airplane.
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}
