package repository

import (
	"officer-mobility/internal/model"

	"gorm.io/gorm"
)

// AssignmentRepository has no update or delete: a new year's snapshot never
// overwrites a prior one.
type AssignmentRepository interface {
	GetByOfficer(officer *model.Officer) ([]model.Assignment, error)
	GetByYear(year int) ([]model.Assignment, error)
	Create(assignment *model.Assignment) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db}
}

// unscoped lets a historical posting still resolve to an institution or
// officer that was soft-deleted later.
func unscoped(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// GetByOfficer returns the officer's rows in ascending year order with
// Institution preloaded and Officer set to the given record.
func (r *assignmentRepository) GetByOfficer(officer *model.Officer) ([]model.Assignment, error) {
	var rows []model.Assignment
	err := r.db.Preload("Institution", unscoped).
		Where("officer_id = ?", officer.ID).
		Order("year asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Officer = *officer
	}
	return rows, nil
}

func (r *assignmentRepository) GetByYear(year int) ([]model.Assignment, error) {
	var rows []model.Assignment
	err := r.db.Preload("Officer", unscoped).Preload("Institution", unscoped).
		Where("year = ?", year).
		Find(&rows).Error
	return rows, err
}

func (r *assignmentRepository) Create(assignment *model.Assignment) error {
	return r.db.Create(assignment).Error
}
