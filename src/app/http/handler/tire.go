// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tirecatalog/src/app/http/dto"
	"tirecatalog/src/app/http/response"
	"tirecatalog/src/core/domain"
	"tirecatalog/src/core/usecase"
)

// TireHandler handles catalog CRUD and listing endpoints.
type TireHandler struct {
	tireService *usecase.TireService
}

func NewTireHandler(tireService *usecase.TireService) *TireHandler {
	return &TireHandler{tireService: tireService}
}

// List handles GET /api/tires with optional search, exact-match filters,
// and pagination. Unparseable page/limit values fall back to defaults.
func (h *TireHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	filter := domain.TireFilter{
		Search:   c.Query("search"),
		Brand:    c.Query("brand"),
		Model:    c.Query("model"),
		Size:     c.Query("size"),
		Position: c.Query("position"),
	}

	result, err := h.tireService.List(c.Request.Context(), filter, domain.PageRequest{Page: page, Limit: limit})
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	response.Page(c, result.Tires, response.Pagination{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// Get handles GET /api/tires/:id.
func (h *TireHandler) Get(c *gin.Context) {
	id, ok := parseTireID(c)
	if !ok {
		return
	}

	tire, err := h.tireService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, tire)
}

// Create handles POST /api/tires.
func (h *TireHandler) Create(c *gin.Context) {
	var req dto.TireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	id, err := h.tireService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Created(c, gin.H{"id": id}, "Tire created successfully")
}

// Update handles PUT /api/tires/:id. Every field is replaced wholesale.
func (h *TireHandler) Update(c *gin.Context) {
	id, ok := parseTireID(c)
	if !ok {
		return
	}

	var req dto.TireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.tireService.Update(c.Request.Context(), id, req.ToDomain()); err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Message(c, "Tire updated successfully")
}

// Delete handles DELETE /api/tires/:id.
func (h *TireHandler) Delete(c *gin.Context) {
	id, ok := parseTireID(c)
	if !ok {
		return
	}

	if err := h.tireService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Message(c, "Tire deleted successfully")
}

// parseTireID extracts the :id path parameter, writing a 400 response when
// it is not a valid integer.
func parseTireID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid tire id")
		return 0, false
	}
	return id, true
}
