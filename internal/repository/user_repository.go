package repository

import (
	"github.com/lucasmonteiro/occurrence-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByMatricula finds a user by registration identifier
func (r *GormUserRepository) FindByMatricula(matricula string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("matricula = ?", matricula).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
