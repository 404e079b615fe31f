package handler

import (
	"github.com/gin-gonic/gin"

	"tirecatalog/src/app/http/response"
	"tirecatalog/src/core/usecase"
)

// FilterHandler handles the faceted-filter endpoint.
type FilterHandler struct {
	filterService *usecase.FilterService
}

func NewFilterHandler(filterService *usecase.FilterService) *FilterHandler {
	return &FilterHandler{filterService: filterService}
}

// Facets handles GET /api/filters, returning the distinct values currently
// present for the front-end selectors.
func (h *FilterHandler) Facets(c *gin.Context) {
	facets, err := h.filterService.Facets(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, facets)
}
