package assessments

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SAADSTACK/ergoassess/internal/images"
	"github.com/SAADSTACK/ergoassess/internal/shared/server/respond"
	"github.com/SAADSTACK/ergoassess/internal/vision"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", h.create)
	rg.GET("/assessments/:id", h.get)
	rg.GET("/assessments", h.list)
	rg.POST("/images/:id/assess", h.assessImage)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	assessment, err := h.Svc.CreateFromAngles(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create assessment", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(assessment))
}

func (h *Handler) assessImage(c *gin.Context) {
	var req AssessImageRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	assessment, err := h.Svc.CreateFromImage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, images.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "image not found", nil)
		case errors.Is(err, vision.ErrNoPoseDetected):
			respond.Error(c, http.StatusUnprocessableEntity, "pose_not_detected", "no pose detected in image", nil)
		case errors.Is(err, ErrVisionNotConfigured), errors.Is(err, vision.ErrNotImplemented):
			respond.Error(c, http.StatusServiceUnavailable, "vision_unavailable", "pose estimation is not configured", nil)
		case errors.Is(err, ErrInvalidInput), errors.Is(err, images.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to assess image", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(assessment))
}

func (h *Handler) get(c *gin.Context) {
	assessment, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch assessment", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(assessment))
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

	list, err := h.Svc.ListBySubject(c.Request.Context(), subjectID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list assessments", nil)
		}
		return
	}

	resp := make([]ListItemResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, toListItem(a))
	}

	respond.JSON(c, http.StatusOK, resp)
}
