package blog

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ranstack/portfolio-core/internal/middleware"
	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
	"github.com/ranstack/portfolio-core/internal/pkg/upload"
)

// Handler handles blog HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts blog routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, optionalMW, adminMW gin.HandlerFunc) {
	blogs := rg.Group("/blogs")

	blogs.GET("", h.list)
	blogs.GET("/:slug", optionalMW, h.getBySlug)

	admin := blogs.Group("", authMW, adminMW)
	admin.GET("/admin/all", h.adminList)
	admin.POST("", h.create)
	admin.PUT("/:slug", h.update) // :slug carries the blog ID on admin routes
	admin.DELETE("/:slug", h.delete)
}

// list GET /blogs
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	blogs, pag, err := h.svc.List(q, lq)
	if err != nil {
		response.InternalError(c)
		return
	}

	items := make([]blogResponse, len(blogs))
	for i, b := range blogs {
		items[i] = toResponse(&b)
	}
	response.Paged(c, items, pag)
}

// getBySlug GET /blogs/:slug
//
// Signed-in admins may preview unpublished blogs.
func (h *Handler) getBySlug(c *gin.Context) {
	user := middleware.CurrentUser(c)
	isAdmin := user != nil && user.Role == models.RoleAdmin

	blog, err := h.svc.GetBySlug(c.Param("slug"), isAdmin)
	if err != nil {
		response.InternalError(c)
		return
	}
	if blog == nil {
		response.NotFound(c, "Blog not found")
		return
	}
	response.OK(c, toResponse(blog))
}

// adminList GET /blogs/admin/all
func (h *Handler) adminList(c *gin.Context) {
	q := pagination.FromContext(c)

	blogs, pag, err := h.svc.AdminList(q)
	if err != nil {
		response.InternalError(c)
		return
	}

	items := make([]blogResponse, len(blogs))
	for i, b := range blogs {
		items[i] = toResponse(&b)
	}
	response.Paged(c, items, pag)
}

// create POST /blogs
func (h *Handler) create(c *gin.Context) {
	var dto CreateBlogDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	image, ok := formImage(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	blog, err := h.svc.Create(c.Request.Context(), &dto, user.ID, image)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, toResponse(blog))
}

// update PUT /blogs/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateBlogDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	image, ok := formImage(c)
	if !ok {
		return
	}

	blog, err := h.svc.Update(c.Request.Context(), c.Param("slug"), &dto, image)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	if blog == nil {
		response.NotFound(c, "Blog not found")
		return
	}
	response.OK(c, toResponse(blog))
}

// delete DELETE /blogs/:id
func (h *Handler) delete(c *gin.Context) {
	ok, err := h.svc.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.InternalError(c)
		return
	}
	if !ok {
		response.NotFound(c, "Blog not found")
		return
	}
	response.Message(c, "Blog deleted successfully")
}

// formImage reads the optional featuredImage part. It writes the error
// response itself and reports whether the caller may proceed.
func formImage(c *gin.Context) (*upload.File, bool) {
	fh, err := c.FormFile("featuredImage")
	if err != nil {
		// Missing part or non-multipart body: no image supplied.
		return nil, true
	}

	file, err := upload.Read(fh)
	if err != nil {
		if errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrNotImage) {
			response.BadRequest(c, err.Error())
		} else {
			response.InternalError(c)
		}
		return nil, false
	}
	return file, true
}
