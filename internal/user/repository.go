package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jdkim-dev/boardgo/internal/models"
)

// ErrNotFound is returned when no active user matches the lookup.
var ErrNotFound = errors.New("user not found")

// Repository is the storage contract for user rows. Every read filters out
// soft-deleted rows explicitly; deletion only ever flips the flag.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUsername looks up an active user by the provisioning match key.
func (r *Repository) FindByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.Where("username = ? AND is_deleted = ?", username, false).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID looks up an active user by id.
func (r *Repository) FindByID(id uint) (*models.User, error) {
	var u models.User
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Save inserts or updates a user row; the id is assigned on first save.
func (r *Repository) Save(u *models.User) error {
	return r.db.Save(u).Error
}

// SoftDelete marks a user deleted without removing the row.
func (r *Repository) SoftDelete(id uint) error {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all active users.
func (r *Repository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("is_deleted = ?", false).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
