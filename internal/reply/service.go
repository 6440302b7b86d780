package reply

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jdkim-dev/boardgo/internal/board"
	"github.com/jdkim-dev/boardgo/internal/models"
)

// ErrNotFound is returned when no active reply matches the lookup.
var ErrNotFound = errors.New("reply not found")

// Dto is the outward view of a reply.
type Dto struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
	BoardID uint   `json:"boardId"`
	UserID  uint   `json:"userId"`
}

func toDto(r *models.Reply) Dto {
	return Dto{ID: r.ID, Content: r.Content, BoardID: r.BoardID, UserID: r.UserID}
}

// Service implements reply CRUD. Board existence is checked through the
// board repository so a reply can never attach to a missing or deleted post.
type Service struct {
	db     *gorm.DB
	boards *board.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, boards: board.NewRepository(db)}
}

// Create attaches a reply to a board on behalf of the given user and returns
// the board's updated reply list.
func (s *Service) Create(boardID, userID uint, content string) ([]Dto, error) {
	if _, err := s.boards.FindByID(boardID); err != nil {
		return nil, err
	}

	r := models.Reply{Content: content, BoardID: boardID, UserID: userID}
	if err := s.db.Create(&r).Error; err != nil {
		return nil, err
	}

	return s.ListByBoard(boardID)
}

func (s *Service) Get(replyID uint) (Dto, error) {
	var r models.Reply
	err := s.db.Where("id = ? AND is_deleted = ?", replyID, false).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Dto{}, ErrNotFound
	}
	if err != nil {
		return Dto{}, err
	}
	return toDto(&r), nil
}

func (s *Service) Update(replyID uint, content string) (Dto, error) {
	var r models.Reply
	err := s.db.Where("id = ? AND is_deleted = ?", replyID, false).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Dto{}, ErrNotFound
	}
	if err != nil {
		return Dto{}, err
	}

	r.Content = content
	if err := s.db.Save(&r).Error; err != nil {
		return Dto{}, err
	}
	return toDto(&r), nil
}

// Delete soft-deletes a reply; the row stays behind the is_deleted flag.
func (s *Service) Delete(replyID uint) error {
	res := s.db.Model(&models.Reply{}).
		Where("id = ? AND is_deleted = ?", replyID, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByBoard returns the active replies under a board, oldest first.
func (s *Service) ListByBoard(boardID uint) ([]Dto, error) {
	var replies []models.Reply
	err := s.db.Where("board_id = ? AND is_deleted = ?", boardID, false).
		Order("id").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}

	dtos := make([]Dto, 0, len(replies))
	for i := range replies {
		dtos = append(dtos, toDto(&replies[i]))
	}
	return dtos, nil
}
