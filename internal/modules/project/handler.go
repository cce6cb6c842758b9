package project

import (
	"errors"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/ranstack/portfolio-core/internal/middleware"
	"github.com/ranstack/portfolio-core/internal/models"
	"github.com/ranstack/portfolio-core/internal/pkg/pagination"
	"github.com/ranstack/portfolio-core/internal/pkg/response"
	"github.com/ranstack/portfolio-core/internal/pkg/upload"
)

const maxGalleryImages = 10

// Handler handles project HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts project routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, optionalMW, adminMW gin.HandlerFunc) {
	projects := rg.Group("/projects")

	projects.GET("", h.list)
	projects.GET("/:slug", optionalMW, h.getBySlug)

	admin := projects.Group("", authMW, adminMW)
	admin.GET("/admin/all", h.adminList)
	admin.POST("", h.create)
	admin.PUT("/:slug", h.update) // :slug carries the project ID on admin routes
	admin.DELETE("/:slug", h.delete)
}

// list GET /projects
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	projects, pag, err := h.svc.List(q, lq)
	if err != nil {
		response.InternalError(c)
		return
	}

	items := make([]projectResponse, len(projects))
	for i, p := range projects {
		items[i] = toResponse(&p)
	}
	response.Paged(c, items, pag)
}

// getBySlug GET /projects/:slug
//
// Signed-in admins may preview unpublished projects.
func (h *Handler) getBySlug(c *gin.Context) {
	user := middleware.CurrentUser(c)
	isAdmin := user != nil && user.Role == models.RoleAdmin

	project, err := h.svc.GetBySlug(c.Param("slug"), isAdmin)
	if err != nil {
		response.InternalError(c)
		return
	}
	if project == nil {
		response.NotFound(c, "Project not found")
		return
	}
	response.OK(c, toResponse(project))
}

// adminList GET /projects/admin/all
func (h *Handler) adminList(c *gin.Context) {
	q := pagination.FromContext(c)

	projects, pag, err := h.svc.AdminList(q)
	if err != nil {
		response.InternalError(c)
		return
	}

	items := make([]projectResponse, len(projects))
	for i, p := range projects {
		items[i] = toResponse(&p)
	}
	response.Paged(c, items, pag)
}

// create POST /projects
func (h *Handler) create(c *gin.Context) {
	var dto CreateProjectDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	featured, gallery, ok := formImages(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	project, err := h.svc.Create(c.Request.Context(), &dto, user.ID, featured, gallery)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, toResponse(project))
}

// update PUT /projects/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateProjectDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	featured, gallery, ok := formImages(c)
	if !ok {
		return
	}

	project, err := h.svc.Update(c.Request.Context(), c.Param("slug"), &dto, featured, gallery)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	if project == nil {
		response.NotFound(c, "Project not found")
		return
	}
	response.OK(c, toResponse(project))
}

// delete DELETE /projects/:id
func (h *Handler) delete(c *gin.Context) {
	ok, err := h.svc.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.InternalError(c)
		return
	}
	if !ok {
		response.NotFound(c, "Project not found")
		return
	}
	response.Message(c, "Project deleted successfully")
}

// formImages reads the optional featuredImage part and images gallery parts.
// It writes the error response itself and reports whether the caller may
// proceed.
func formImages(c *gin.Context) (*upload.File, []*upload.File, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		// Non-multipart body: no images supplied.
		return nil, nil, true
	}

	var featured *upload.File
	if fhs := form.File["featuredImage"]; len(fhs) > 0 {
		if featured = readImage(c, fhs[0]); featured == nil {
			return nil, nil, false
		}
	}

	galleryParts := form.File["images"]
	if len(galleryParts) > maxGalleryImages {
		response.BadRequest(c, "Maximum 10 gallery images allowed")
		return nil, nil, false
	}
	gallery := make([]*upload.File, 0, len(galleryParts))
	for _, fh := range galleryParts {
		file := readImage(c, fh)
		if file == nil {
			return nil, nil, false
		}
		gallery = append(gallery, file)
	}

	return featured, gallery, true
}

func readImage(c *gin.Context, fh *multipart.FileHeader) *upload.File {
	file, err := upload.Read(fh)
	if err != nil {
		if errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrNotImage) {
			response.BadRequest(c, err.Error())
		} else {
			response.InternalError(c)
		}
		return nil
	}
	return file
}
