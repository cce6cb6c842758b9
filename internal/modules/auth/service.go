package auth

import (
	"context"
	"errors"
	"time"

	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/identity"
	"github.com/ranstack/portfolio-core/internal/pkg/jwt"
	"gorm.io/gorm"
)

// ErrInvalidToken is returned when the provider rejects the ID token.
var ErrInvalidToken = errors.New("invalid token")

// sessionTTL bounds how long a login exchange stays valid.
const sessionTTL = 7 * 24 * time.Hour

// Service handles login and session issuance.
type Service struct {
	db       *gorm.DB
	provider identity.Provider
	signer   *jwt.Signer
}

func NewService(db *gorm.DB, provider identity.Provider, signer *jwt.Signer) *Service {
	return &Service{db: db, provider: provider, signer: signer}
}

// Login verifies a provider ID token, upserts the local user and returns it
// with a backend session token. First-time logins create a "user" role row;
// the provider email wins over a stale local copy.
func (s *Service) Login(ctx context.Context, idToken string) (*models.UserModel, string, error) {
	tok, err := s.provider.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, "", ErrInvalidToken
	}

	now := time.Now()

	var user models.UserModel
	err = s.db.First(&user, "provider_uid = ?", tok.UID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.UserModel{
			Email:       tok.Email,
			Role:        models.RoleUser,
			ProviderUID: tok.UID,
			LastLogin:   &now,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, "", err
		}
	case err != nil:
		return nil, "", err
	default:
		updates := map[string]interface{}{"last_login": now}
		if tok.Email != "" && tok.Email != user.Email {
			updates["email"] = tok.Email
			user.Email = tok.Email
		}
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, "", err
		}
		user.LastLogin = &now
	}

	session, err := s.signer.Sign(user.ID, sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return &user, session, nil
}
