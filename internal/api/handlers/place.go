package handlers

import (
	"net/http"

	"turnos-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaceHandler handles HTTP requests for place operations
type PlaceHandler struct {
	placeService *service.PlaceService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(placeService *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{placeService: placeService}
}

// CreatePlace handles POST /places
// @Summary Create a place
// @Tags places
// @Accept json
// @Produce json
// @Param place body service.CreatePlaceRequest true "Place data"
// @Success 201 {object} models.Place "Successfully created place"
// @Failure 409 {object} ErrorResponse "Place name already taken within the team"
// @Security BearerAuth
// @Router /places [post]
func (h *PlaceHandler) CreatePlace(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req service.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	place, err := h.placeService.Create(p, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, place)
}

// GetPlace handles GET /places/:id
// @Summary Get place by ID
// @Tags places
// @Produce json
// @Param id path string true "Place ID (UUID)"
// @Success 200 {object} models.Place "Place"
// @Failure 404 {object} ErrorResponse "Place not found"
// @Security BearerAuth
// @Router /places/{id} [get]
func (h *PlaceHandler) GetPlace(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	team, ok := queryTeam(c)
	if !ok {
		return
	}
	place, err := h.placeService.GetByID(p, id, team)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

// ListPlaces handles GET /places
// @Summary List places of the caller's team
// @Tags places
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{} "Places with pagination"
// @Security BearerAuth
// @Router /places [get]
func (h *PlaceHandler) ListPlaces(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	team, ok := queryTeam(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)
	places, total, err := h.placeService.List(p, team, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"places": places,
		"meta":   ListMeta{Total: total, Page: page, PageSize: pageSize},
	})
}

// UpdatePlace handles PUT /places/:id
// @Summary Update a place
// @Description Update place attributes, including the volunteer capacity
// @Tags places
// @Accept json
// @Produce json
// @Param id path string true "Place ID (UUID)"
// @Param place body service.UpdatePlaceRequest true "Place data"
// @Success 200 {object} models.Place "Updated place"
// @Failure 404 {object} ErrorResponse "Place not found"
// @Security BearerAuth
// @Router /places/{id} [put]
func (h *PlaceHandler) UpdatePlace(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	team, ok := queryTeam(c)
	if !ok {
		return
	}
	var req service.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	place, err := h.placeService.Update(p, id, &req, team)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

// DeletePlace handles DELETE /places/:id
// @Summary Delete a place
// @Tags places
// @Produce json
// @Param id path string true "Place ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Place not found"
// @Security BearerAuth
// @Router /places/{id} [delete]
func (h *PlaceHandler) DeletePlace(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	team, ok := queryTeam(c)
	if !ok {
		return
	}
	if err := h.placeService.Delete(p, id, team); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
