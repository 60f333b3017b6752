package model

import (
	"officer-mobility/internal/mobility"

	"gorm.io/gorm"
)

// Assignment is one officer's posting for one year. Rows are append-only.
type Assignment struct {
	gorm.Model
	OfficerID     uint   `json:"officer_id" gorm:"uniqueIndex:idx_officer_year;not null"`
	InstitutionID uint   `json:"institution_id" gorm:"index;not null"`
	Year          int    `json:"year" gorm:"uniqueIndex:idx_officer_year;not null"`
	Grade         string `json:"grade" gorm:"size:8"`
	Post          string `json:"post"`

	Officer     Officer     `json:"-" gorm:"foreignKey:OfficerID"`
	Institution Institution `json:"institution" gorm:"foreignKey:InstitutionID"`
}

// Snapshot converts a row with its Officer and Institution preloaded into
// the engine's input shape.
func (a Assignment) Snapshot() mobility.Snapshot {
	return mobility.Snapshot{
		OfficerID:       a.Officer.FileNo,
		Year:            a.Year,
		InstitutionID:   a.Institution.Code,
		InstitutionName: a.Institution.Name,
		Location:        a.Institution.Coordinate(),
		Grade:           mobility.Grade(a.Grade),
		Post:            a.Post,
	}
}
