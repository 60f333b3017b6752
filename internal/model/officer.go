package model

import "gorm.io/gorm"

type Officer struct {
	gorm.Model
	FileNo string `json:"file_no" gorm:"column:file_no;size:64;uniqueIndex;not null"`
	Name   string `json:"name"`
	Grade  string `json:"grade" gorm:"size:8;index"` // SP, GI, GII, GIII
	Post   string `json:"post"`

	// Relasi
	Assignments []Assignment `json:"assignments,omitempty"`
}
