package board

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jdkim-dev/boardgo/internal/models"
)

// ErrNotFound is returned when no active board matches the lookup.
var ErrNotFound = errors.New("board not found")

// Repository is the storage contract for board rows; reads exclude
// soft-deleted rows, deletes only flip the flag.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) active() *gorm.DB {
	return r.db.Where("is_deleted = ?", false)
}

// FindPage returns one page of active boards, newest id first. A non-empty
// title narrows the page to substring matches.
func (r *Repository) FindPage(title string, page, size int) ([]models.Board, int64, error) {
	// fresh chain per statement; a Count finisher must not leak into the Find
	query := func() *gorm.DB {
		q := r.active().Model(&models.Board{})
		if title != "" {
			q = q.Where("title LIKE ?", "%"+title+"%")
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var boards []models.Board
	err := query().Order("id DESC").Offset(page * size).Limit(size).Find(&boards).Error
	if err != nil {
		return nil, 0, err
	}
	return boards, total, nil
}

func (r *Repository) FindByID(id uint) (*models.Board, error) {
	var b models.Board
	err := r.active().First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Save(b *models.Board) error {
	return r.db.Save(b).Error
}

// SoftDelete marks a board deleted without removing the row.
func (r *Repository) SoftDelete(id uint) error {
	res := r.db.Model(&models.Board{}).
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

// Count reports the number of active boards. Used by the seeder.
func (r *Repository) Count() (int64, error) {
	var n int64
	err := r.active().Model(&models.Board{}).Count(&n).Error
	return n, err
}
