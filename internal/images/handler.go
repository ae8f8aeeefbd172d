package images

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SAADSTACK/ergoassess/internal/shared/server/respond"
)

const maxUploadSize = 16 << 20 // 16MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches image routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/images", h.upload)
	rg.GET("/images/:id", h.get)
	rg.GET("/images", h.list)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	subjectID := strings.TrimSpace(c.PostForm("subjectId"))
	viewHint := strings.TrimSpace(c.PostForm("viewHint"))

	img, err := h.Svc.Upload(c.Request.Context(), subjectID, fileHeader.Filename, viewHint, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType):
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_type", "only PNG and JPEG images are accepted", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload image", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(img))
}

func (h *Handler) get(c *gin.Context) {
	img, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "image not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch image", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(img))
}

func (h *Handler) list(c *gin.Context) {
	subjectID := strings.TrimSpace(c.Query("subjectId"))
	if subjectID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "subjectId is required", nil)
		return
	}

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	imgs, err := h.Svc.ListBySubject(c.Request.Context(), subjectID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list images", nil)
		}
		return
	}

	resp := make([]ImageResponse, 0, len(imgs))
	for _, img := range imgs {
		resp = append(resp, toResponse(img))
	}

	respond.JSON(c, http.StatusOK, resp)
}
