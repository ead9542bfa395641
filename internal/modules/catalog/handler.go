package catalog

import (
	"net/http"

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
	rg.GET("/catalog", h.ListEntries)
	rg.GET("/venues", h.ListVenues)
	rg.GET("/clients", h.ListClients)
}

func (h *Handler) ListEntries(c *gin.Context) {
	entries, err := h.service.ListEntries(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list catalog entries")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"entries": entries})
}

func (h *Handler) ListVenues(c *gin.Context) {
	venues, err := h.service.ListVenues(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list venues")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"venues": venues})
}

func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list clients")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"clients": clients})
}
