package repository

import (
	"officer-mobility/internal/model"

	"gorm.io/gorm"
)

type InstitutionRepository interface {
	GetAll(district string) ([]model.Institution, error)
	FindByCode(code string) (*model.Institution, error)
	Create(institution *model.Institution) error
}

type institutionRepository struct {
	db *gorm.DB
}

func NewInstitutionRepository(db *gorm.DB) InstitutionRepository {
	return &institutionRepository{db}
}

func (r *institutionRepository) GetAll(district string) ([]model.Institution, error) {
	var institutions []model.Institution
	query := r.db.Order("name asc")
	if district != "" {
		query = query.Where("district = ?", district)
	}
	err := query.Find(&institutions).Error
	return institutions, err
}

func (r *institutionRepository) FindByCode(code string) (*model.Institution, error) {
	var institution model.Institution
	err := r.db.Where("code = ?", code).First(&institution).Error
	return &institution, err
}

func (r *institutionRepository) Create(institution *model.Institution) error {
	return r.db.Create(institution).Error
}
