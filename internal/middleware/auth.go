package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/identity"
	"github.com/ranstack/portfolio-core/internal/pkg/jwt"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
	"gorm.io/gorm"
)

const ContextKeyUser = "current_user"

var (
	errInvalidToken = errors.New("invalid token")
	errUserNotFound = errors.New("user not found")
)

// Auth enforces authentication: a backend session token or an
// identity-provider ID token, resolved to a local user attached to the
// request context.
func Auth(db *gorm.DB, provider identity.Provider, signer *jwt.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "no token provided")
			return
		}

		user, err := resolveUser(c, db, provider, signer, token)
		switch {
		case err == nil:
			c.Set(ContextKeyUser, user)
			c.Next()
		case errors.Is(err, errInvalidToken):
			response.Unauthorized(c, "invalid token")
		case errors.Is(err, errUserNotFound):
			response.Unauthorized(c, "user not found")
		default:
			response.InternalError(c)
		}
	}
}

// OptionalAuth attaches the user when a valid token is present but never
// blocks the request.
func OptionalAuth(db *gorm.DB, provider identity.Provider, signer *jwt.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if user, err := resolveUser(c, db, provider, signer, token); err == nil {
				c.Set(ContextKeyUser, user)
			}
		}
		c.Next()
	}
}

// RequireRole rejects requests whose attached user does not hold the role.
// Must run after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			actual := "unknown"
			if user != nil {
				actual = user.Role
			}
			response.Forbidden(c, fmt.Sprintf("User role %s is not authorized to access this route", actual))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached to the context, or nil.
func CurrentUser(c *gin.Context) *models.UserModel {
	v, _ := c.Get(ContextKeyUser)
	user, _ := v.(*models.UserModel)
	return user
}

// IsAuthenticated reports whether the request carries a resolved user.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUser(c) != nil
}

func resolveUser(c *gin.Context, db *gorm.DB, provider identity.Provider, signer *jwt.Signer, token string) (*models.UserModel, error) {
	// Backend session tokens are tried first; a raw provider ID token also
	// works so clients may keep using it as the bearer credential.
	if signer != nil {
		if claims, err := signer.Parse(token); err == nil {
			return findUser(db, "id = ?", claims.UserID)
		}
	}

	idTok, err := provider.VerifyIDToken(c.Request.Context(), token)
	if err != nil {
		return nil, errInvalidToken
	}
	return findUser(db, "provider_uid = ?", idTok.UID)
}

func findUser(db *gorm.DB, query string, arg interface{}) (*models.UserModel, error) {
	var user models.UserModel
	if err := db.First(&user, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func extractToken(c *gin.Context) string {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if auth == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return auth
}
