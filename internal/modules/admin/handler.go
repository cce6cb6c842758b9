package admin

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
)

// Handler handles admin HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts admin routes onto the given router group. Setup is
// public (and self-guarding); everything else requires an admin session.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	admin := rg.Group("/admin")

	admin.POST("/setup", h.setup)

	guarded := admin.Group("", authMW, adminMW)
	guarded.GET("/dashboard", h.dashboard)
	guarded.GET("/users", h.listUsers)
	guarded.PUT("/users/:id/role", h.updateRole)
	guarded.DELETE("/users/:id", h.deleteUser)
}

// setup POST /admin/setup
func (h *Handler) setup(c *gin.Context) {
	var dto SetupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.svc.Setup(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrAdminExists) {
			response.BadRequest(c, "Admin account already exists")
			return
		}
		response.InternalError(c)
		return
	}
	response.CreatedMsg(c, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}, "Admin account created successfully")
}

// dashboard GET /admin/dashboard
func (h *Handler) dashboard(c *gin.Context) {
	d, err := h.svc.Dashboard()
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, d)
}

// listUsers GET /admin/users
func (h *Handler) listUsers(c *gin.Context) {
	q := pagination.FromContext(c)

	users, pag, err := h.svc.ListUsers(q)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Paged(c, users, pag)
}

// updateRole PUT /admin/users/:id/role
func (h *Handler) updateRole(c *gin.Context) {
	var dto UpdateRoleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.svc.UpdateRole(c.Param("id"), dto.Role)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole):
			response.BadRequest(c, "Role must be user or admin")
		case errors.Is(err, ErrLastAdmin):
			response.BadRequest(c, "Cannot remove the last admin")
		default:
			response.InternalError(c)
		}
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}
	response.OK(c, user)
}

// deleteUser DELETE /admin/users/:id
func (h *Handler) deleteUser(c *gin.Context) {
	ok, err := h.svc.DeleteUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrLastAdmin) {
			response.BadRequest(c, "Cannot delete the last admin")
			return
		}
		response.InternalError(c)
		return
	}
	if !ok {
		response.NotFound(c, "User not found")
		return
	}
	response.Message(c, "User deleted successfully")
}
