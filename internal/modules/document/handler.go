package document

import (
	"errors"
	"net/http"
	"strconv"

	"hotelops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/groups/:id/documents/:kind", h.Render)
}

func (h *Handler) Render(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid group id")
		return
	}

	kind, err := ParseKind(c.Param("kind"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Document kind must be quote, invoice or function-sheet")
		return
	}

	doc, err := h.service.RenderByID(c.Request.Context(), id, kind)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "NOT_FOUND", "Group not found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render document")
		return
	}

	response.OK(c, http.StatusOK, doc)
}
