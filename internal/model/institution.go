package model

import (
	"officer-mobility/internal/mobility"

	"gorm.io/gorm"
)

type Institution struct {
	gorm.Model
	Code         string   `json:"code" gorm:"size:64;uniqueIndex;not null"`
	Name         string   `json:"name" gorm:"not null"`
	Category     string   `json:"category"` // major / minor
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationName string   `json:"location_name"`
	District     string   `json:"district" gorm:"index"`
}

// Coordinate returns nil when the location is unresolved (either value missing).
func (i Institution) Coordinate() *mobility.Coordinate {
	return mobility.NewCoordinate(i.Latitude, i.Longitude)
}
