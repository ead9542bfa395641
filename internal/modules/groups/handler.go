package groups

import (
	"net/http"
	"strconv"

	"hotelops/internal/pkg/response"
	"hotelops/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/groups", h.Create)
	rg.GET("/groups", h.List)
	rg.GET("/groups/:id", h.Get)
	rg.PUT("/groups/:id", h.Save)
	rg.PUT("/groups/:id/rooms/:type", h.UpdateRoomCount)
	rg.POST("/groups/:id/items", h.AddItem)
	rg.DELETE("/groups/:id/items/:itemID", h.RemoveItem)
	rg.POST("/groups/:id/items/:itemID/catalog/:entryID", h.ApplyCatalog)
	rg.GET("/groups/:id/conflicts", h.Conflicts)
	rg.POST("/groups/:id/schedule/default", h.GenerateSchedule)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrors := validator.Struct(req); fieldErrors != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request fields", gin.H{"field_errors": fieldErrors})
		return
	}

	g, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create group")
		return
	}

	response.OK(c, http.StatusCreated, envelope(g))
}

func (h *Handler) List(c *gin.Context) {
	gs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to list groups")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"groups": gs})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	g, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load group")
		return
	}

	response.OK(c, http.StatusOK, envelope(g))
}

func (h *Handler) Save(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	var req SaveGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	g, err := h.service.Save(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to save group")
		return
	}

	response.OK(c, http.StatusOK, envelope(g))
}

func (h *Handler) UpdateRoomCount(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	var req UpdateRoomCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	g, err := h.service.UpdateRoomCount(c.Request.Context(), id, c.Param("type"), int(req.Count))
	if err != nil {
		h.writeError(c, err, "Failed to update room count")
		return
	}

	response.OK(c, http.StatusOK, envelope(g))
}

func (h *Handler) AddItem(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	g, err := h.service.AddItem(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to add invoice item")
		return
	}

	response.OK(c, http.StatusCreated, envelope(g))
}

func (h *Handler) RemoveItem(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	g, err := h.service.RemoveItem(c.Request.Context(), id, c.Param("itemID"))
	if err != nil {
		h.writeError(c, err, "Failed to remove invoice item")
		return
	}

	response.OK(c, http.StatusOK, envelope(g))
}

func (h *Handler) ApplyCatalog(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	entryID, err := strconv.ParseInt(c.Param("entryID"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid catalog entry id")
		return
	}

	g, err := h.service.ApplyCatalog(c.Request.Context(), id, c.Param("itemID"), entryID)
	if err != nil {
		h.writeError(c, err, "Failed to apply catalog entry")
		return
	}

	response.OK(c, http.StatusOK, envelope(g))
}

func (h *Handler) Conflicts(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	conflicts, err := h.service.CheckConflicts(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to check conflicts")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"conflicts": conflicts})
}

func (h *Handler) GenerateSchedule(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	g, err := h.service.GenerateSchedule(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to generate payment schedule")
		return
	}

	response.OK(c, http.StatusOK, envelope(g))
}

func (h *Handler) groupID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid group id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking name and dates are required")
	case ErrNotFound:
		response.Fail(c, http.StatusNotFound, "NOT_FOUND", "Group not found")
	case ErrItemNotFound:
		response.Fail(c, http.StatusNotFound, "NOT_FOUND", "Invoice item not found")
	case ErrDuplicateReference:
		response.Fail(c, http.StatusConflict, "DUPLICATE_REFERENCE", "Group reference already exists")
	default:
		response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
