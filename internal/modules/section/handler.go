package section

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ranstack/portfolio-core/internal/middleware"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
)

// Handler handles CMS section HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts section routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	sections := rg.Group("/sections")

	sections.GET("", h.list)
	sections.GET("/:name", h.getByName)

	admin := sections.Group("", authMW, adminMW)
	admin.POST("", h.create)
	admin.PUT("/:name", h.update)
	admin.DELETE("/:name", h.delete)
}

// list GET /sections
func (h *Handler) list(c *gin.Context) {
	sections, err := h.svc.List()
	if err != nil {
		response.InternalError(c)
		return
	}

	items := make([]sectionResponse, len(sections))
	for i, s := range sections {
		items[i] = toResponse(&s)
	}
	response.OK(c, items)
}

// getByName GET /sections/:name
func (h *Handler) getByName(c *gin.Context) {
	section, err := h.svc.GetByName(c.Param("name"))
	if err != nil {
		response.InternalError(c)
		return
	}
	if section == nil {
		response.NotFound(c, "Section not found")
		return
	}
	response.OK(c, toResponse(section))
}

// create POST /sections
func (h *Handler) create(c *gin.Context) {
	var dto CreateSectionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	section, err := h.svc.Create(&dto, user.ID)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, toResponse(section))
}

// update PUT /sections/:name
func (h *Handler) update(c *gin.Context) {
	var dto UpdateSectionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	section, err := h.svc.Update(c.Param("name"), &dto, user.ID)
	if err != nil {
		response.InternalError(c)
		return
	}
	if section == nil {
		response.NotFound(c, "Section not found")
		return
	}
	response.OK(c, toResponse(section))
}

// delete DELETE /sections/:name
func (h *Handler) delete(c *gin.Context) {
	ok, err := h.svc.Delete(c.Param("name"))
	if err != nil {
		response.InternalError(c)
		return
	}
	if !ok {
		response.NotFound(c, "Section not found")
		return
	}
	response.Message(c, "Section deleted successfully")
}
