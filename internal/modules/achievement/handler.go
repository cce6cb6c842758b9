package achievement

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ranstack/portfolio-core/internal/middleware"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
)

// Handler handles achievement HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts achievement routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	achievements := rg.Group("/achievements")

	achievements.GET("", h.list)

	admin := achievements.Group("", authMW, adminMW)
	admin.GET("/admin/all", h.adminList)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

// list GET /achievements
func (h *Handler) list(c *gin.Context) {
	achievements, err := h.svc.List()
	if err != nil {
		response.InternalError(c)
		return
	}

	items := make([]achievementResponse, len(achievements))
	for i, a := range achievements {
		items[i] = toResponse(&a)
	}
	response.OK(c, items)
}

// adminList GET /achievements/admin/all
func (h *Handler) adminList(c *gin.Context) {
	q := pagination.FromContext(c)

	achievements, pag, err := h.svc.AdminList(q)
	if err != nil {
		response.InternalError(c)
		return
	}

	items := make([]achievementResponse, len(achievements))
	for i, a := range achievements {
		items[i] = toResponse(&a)
	}
	response.Paged(c, items, pag)
}

// create POST /achievements
func (h *Handler) create(c *gin.Context) {
	var dto CreateAchievementDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	achievement, err := h.svc.Create(&dto, user.ID)
	if err != nil {
		if errors.Is(err, ErrInvalidEnum) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, toResponse(achievement))
}

// update PUT /achievements/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateAchievementDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	achievement, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrInvalidEnum) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	if achievement == nil {
		response.NotFound(c, "Achievement not found")
		return
	}
	response.OK(c, toResponse(achievement))
}

// delete DELETE /achievements/:id
func (h *Handler) delete(c *gin.Context) {
	ok, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	if !ok {
		response.NotFound(c, "Achievement not found")
		return
	}
	response.Message(c, "Achievement deleted successfully")
}
