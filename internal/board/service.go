package board

import (
	"gorm.io/gorm"

	"github.com/jdkim-dev/boardgo/internal/models"
)

// Dto is the outward view of a board post.
type Dto struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Writer  string `json:"writer"`
	Tag     string `json:"tag,omitempty"`
	Content string `json:"content"`
}

func toDto(b *models.Board) Dto {
	return Dto{ID: b.ID, Title: b.Title, Writer: b.Writer, Tag: b.Tag, Content: b.Content}
}

// Page is the pagination envelope returned by list queries.
type Page struct {
	Content       []Dto `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// Service implements board CRUD and search on top of the repository.
type Service struct {
	repo    *Repository
	replies *replyRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: NewRepository(db), replies: &replyRepository{db: db}}
}

// Search returns one page of boards; an empty title means a plain listing.
func (s *Service) Search(title string, page, size int) (Page, error) {
	boards, total, err := s.repo.FindPage(title, page, size)
	if err != nil {
		return Page{}, err
	}

	dtos := make([]Dto, 0, len(boards))
	for i := range boards {
		dtos = append(dtos, toDto(&boards[i]))
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return Page{
		Content:       dtos,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func (s *Service) Create(dto Dto) (Dto, error) {
	b := models.Board{
		Title:   dto.Title,
		Writer:  dto.Writer,
		Tag:     dto.Tag,
		Content: dto.Content,
	}
	if err := s.repo.Save(&b); err != nil {
		return Dto{}, err
	}
	return toDto(&b), nil
}

func (s *Service) Get(id uint) (Dto, error) {
	b, err := s.repo.FindByID(id)
	if err != nil {
		return Dto{}, err
	}
	return toDto(b), nil
}

func (s *Service) Update(id uint, dto Dto) (Dto, error) {
	b, err := s.repo.FindByID(id)
	if err != nil {
		return Dto{}, err
	}

	b.Title = dto.Title
	b.Writer = dto.Writer
	b.Content = dto.Content
	if dto.Tag != "" {
		b.Tag = dto.Tag
	}

	if err := s.repo.Save(b); err != nil {
		return Dto{}, err
	}
	return toDto(b), nil
}

// Delete soft-deletes a board post.
func (s *Service) Delete(id uint) error {
	return s.repo.SoftDelete(id)
}

// Replies lists the active replies under a board, verifying the board exists.
func (s *Service) Replies(boardID uint) ([]models.Reply, error) {
	if _, err := s.repo.FindByID(boardID); err != nil {
		return nil, err
	}
	return s.replies.findByBoardID(boardID)
}

// replyRepository is the minimal read view over replies the board service
// needs; write operations live in the reply package.
type replyRepository struct {
	db *gorm.DB
}

func (r *replyRepository) findByBoardID(boardID uint) ([]models.Reply, error) {
	var replies []models.Reply
	err := r.db.Where("board_id = ? AND is_deleted = ?", boardID, false).
		Order("id").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}
