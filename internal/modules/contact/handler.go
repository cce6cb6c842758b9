package contact

import (
	"github.com/gin-gonic/gin"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
)

// Handler handles contact HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts contact routes onto the given router group. The form
// submission is public; everything else is admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	contacts := rg.Group("/contact")

	contacts.POST("", h.create)

	admin := contacts.Group("", authMW, adminMW)
	admin.GET("", h.list)
	admin.GET("/:id", h.getByID)
	admin.PUT("/:id", h.update)
	admin.POST("/:id/reply", h.reply)
	admin.DELETE("/:id", h.delete)
}

// create POST /contact
func (h *Handler) create(c *gin.Context) {
	var dto CreateContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.svc.Create(&dto); err != nil {
		response.InternalError(c)
		return
	}
	response.CreatedMsg(c, nil, "Message sent successfully")
}

// list GET /contact
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contacts, pag, err := h.svc.List(q, lq)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Paged(c, contacts, pag)
}

// getByID GET /contact/:id
func (h *Handler) getByID(c *gin.Context) {
	contact, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	if contact == nil {
		response.NotFound(c, "Message not found")
		return
	}
	response.OK(c, contact)
}

// update PUT /contact/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contact, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c)
		return
	}
	if contact == nil {
		response.NotFound(c, "Message not found")
		return
	}
	response.OK(c, contact)
}

// reply POST /contact/:id/reply
func (h *Handler) reply(c *gin.Context) {
	var dto ReplyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contact, err := h.svc.Reply(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c)
		return
	}
	if contact == nil {
		response.NotFound(c, "Message not found")
		return
	}
	response.OK(c, contact)
}

// delete DELETE /contact/:id
func (h *Handler) delete(c *gin.Context) {
	ok, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	if !ok {
		response.NotFound(c, "Message not found")
		return
	}
	response.Message(c, "Message deleted successfully")
}
