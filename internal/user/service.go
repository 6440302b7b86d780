package user

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jdkim-dev/boardgo/internal/models"
)

// CreateRequest is the payload for explicit (non-OAuth) user creation.
type CreateRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateRequest mutates an existing user's profile fields.
type UpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response is the outward view of a user; the password hash never leaves.
type Response struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toResponse(u *models.User) Response {
	return Response{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// Service implements user CRUD on top of the repository.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(req CreateRequest) (Response, error) {
	u := models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}
	if u.Role == "" {
		u.Role = models.DefaultRole
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return Response{}, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}

	if err := s.repo.Save(&u); err != nil {
		return Response{}, err
	}
	return toResponse(&u), nil
}

func (s *Service) Get(id uint) (Response, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return Response{}, err
	}
	return toResponse(u), nil
}

func (s *Service) Update(id uint, req UpdateRequest) (Response, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return Response{}, err
	}

	if req.Username != "" {
		u.Username = req.Username
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return Response{}, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}

	if err := s.repo.Save(u); err != nil {
		return Response{}, err
	}
	return toResponse(u), nil
}

func (s *Service) Delete(id uint) error {
	return s.repo.SoftDelete(id)
}

func (s *Service) List() ([]Response, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]Response, 0, len(users))
	for i := range users {
		out = append(out, toResponse(&users[i]))
	}
	return out, nil
}
