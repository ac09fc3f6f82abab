package models

import "time"

type Flight struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RouteID       int64     `gorm:"column:route_id;not null;index"`
	AirplaneID    int64     `gorm:"column:airplane_id;not null;index"`
	DepartureTime time.Time `gorm:"column:departure_time;not null"`
	ArrivalTime   time.Time `gorm:"column:arrival_time;not null"`

	Route    Route    `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Airplane Airplane `gorm:"foreignKey:AirplaneID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Crew     []Crew   `gorm:"many2many:flight_crew;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
