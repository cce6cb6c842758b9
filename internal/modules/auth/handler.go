package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ranstack/portfolio-core/internal/middleware"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
)

// Handler handles auth HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts auth routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	auth := rg.Group("/auth")

	auth.POST("/login", h.login)
	auth.GET("/me", authMW, h.me)
	auth.POST("/logout", authMW, h.logout)
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, session, err := h.svc.Login(c.Request.Context(), dto.Token)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			response.Unauthorized(c, "invalid token")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, loginResponse{Token: session, User: toUserResponse(user)})
}

// me GET /auth/me
func (h *Handler) me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	response.OK(c, toUserResponse(user))
}

// logout POST /auth/logout
// Sessions are stateless; the client drops its token.
func (h *Handler) logout(c *gin.Context) {
	response.Message(c, "Logged out successfully")
}
