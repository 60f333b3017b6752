package repository

import (
	"errors"
	"fmt"
	"officer-mobility/internal/mobility"
	"officer-mobility/internal/model"

	"gorm.io/gorm"
)

type OfficerRepository interface {
	FindByFileNo(fileNo string) (*model.Officer, error)
	GetAll(search string, grade string) ([]model.Officer, error)
	ListFileNos(grade string) ([]string, error)
	Create(officer *model.Officer) error
	Count() (int64, error)
}

type officerRepository struct {
	db *gorm.DB
}

func NewOfficerRepository(db *gorm.DB) OfficerRepository {
	return &officerRepository{db}
}

func (r *officerRepository) FindByFileNo(fileNo string) (*model.Officer, error) {
	var officer model.Officer
	err := r.db.Where("file_no = ?", fileNo).First(&officer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %q", mobility.ErrOfficerNotFound, fileNo)
	}
	if err != nil {
		return nil, err
	}
	return &officer, nil
}

func (r *officerRepository) GetAll(search string, grade string) ([]model.Officer, error) {
	var officers []model.Officer
	query := r.db.Order("file_no asc")

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR file_no LIKE ?", searchPattern, searchPattern)
	}
	if grade != "" {
		query = query.Where("grade = ?", grade)
	}

	err := query.Find(&officers).Error
	return officers, err
}

func (r *officerRepository) ListFileNos(grade string) ([]string, error) {
	var fileNos []string
	query := r.db.Model(&model.Officer{}).Order("file_no asc")
	if grade != "" {
		query = query.Where("grade = ?", grade)
	}
	err := query.Pluck("file_no", &fileNos).Error
	return fileNos, err
}

func (r *officerRepository) Create(officer *model.Officer) error {
	return r.db.Create(officer).Error
}

func (r *officerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Officer{}).Count(&count).Error
	return count, err
}
