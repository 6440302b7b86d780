package auth

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jdkim-dev/boardgo/internal/models"
)

// ErrUnknownProvider aborts a login attempt for a provider this adapter does
// not recognize.
var ErrUnknownProvider = errors.New("unknown oauth provider")

// Profile is the normalized view of an identity provider's user payload. It
// lives only for the duration of one callback; its fields are copied into the
// user row and then discarded.
type Profile struct {
	Provider  string
	SubjectID string
	Email     string
	Name      string
}

// LoginUser wraps the external profile together with the resolved local user.
// It is what the login success path consumes to mint the session token.
type LoginUser struct {
	UserID   uint
	Username string
	Email    string
	Role     string

	Provider  string
	SubjectID string
}

// Provisioner converts a successful third-party login into a local user row.
type Provisioner struct {
	db *gorm.DB
}

func NewProvisioner(db *gorm.DB) *Provisioner {
	return &Provisioner{db: db}
}

// Provision looks up the local user matching the profile, creating it with
// the default role on first login or refreshing its name/email on re-login.
// The lookup-or-create-or-update sequence runs in one transaction. Storage
// errors propagate and abort the login attempt; they are not retried.
//
// The match key is the provider-supplied display name, mirroring the existing
// account data. Names are not guaranteed unique across providers; switching
// to a provider+subject composite key is pending product confirmation.
func (p *Provisioner) Provision(ctx context.Context, profile Profile) (*LoginUser, error) {
	if profile.Provider != "google" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, profile.Provider)
	}

	var resolved models.User
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("username = ? AND is_deleted = ?", profile.Name, false).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := models.User{
				Username: profile.Name,
				Email:    profile.Email,
				Role:     models.DefaultRole,
			}
			if err := tx.Create(&created).Error; err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			resolved = created
			return nil
		case err != nil:
			return fmt.Errorf("failed to look up user: %w", err)
		}

		// role is preserved from the existing record, never overwritten
		existing.Username = profile.Name
		existing.Email = profile.Email
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		resolved = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &LoginUser{
		UserID:    resolved.ID,
		Username:  resolved.Username,
		Email:     resolved.Email,
		Role:      resolved.Role,
		Provider:  profile.Provider,
		SubjectID: profile.SubjectID,
	}, nil
}
