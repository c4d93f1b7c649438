package handlers

import (
	"net/http"

	"turnos-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExhibitorHandler handles HTTP requests for exhibitor operations
type ExhibitorHandler struct {
	exhibitorService *service.ExhibitorService
}

// NewExhibitorHandler creates a new exhibitor handler
func NewExhibitorHandler(exhibitorService *service.ExhibitorService) *ExhibitorHandler {
	return &ExhibitorHandler{exhibitorService: exhibitorService}
}

// CreateExhibitor handles POST /exhibitors
// @Summary Create an exhibitor
// @Tags exhibitors
// @Accept json
// @Produce json
// @Param exhibitor body service.CreateExhibitorRequest true "Exhibitor data"
// @Success 201 {object} models.Exhibitor "Successfully created exhibitor"
// @Security BearerAuth
// @Router /exhibitors [post]
func (h *ExhibitorHandler) CreateExhibitor(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req service.CreateExhibitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	exhibitor, err := h.exhibitorService.Create(p, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exhibitor)
}

// GetExhibitor handles GET /exhibitors/:id
// @Summary Get exhibitor by ID
// @Tags exhibitors
// @Produce json
// @Param id path string true "Exhibitor ID (UUID)"
// @Success 200 {object} models.Exhibitor "Exhibitor"
// @Failure 404 {object} ErrorResponse "Exhibitor not found"
// @Security BearerAuth
// @Router /exhibitors/{id} [get]
func (h *ExhibitorHandler) GetExhibitor(c *gin.Context) {
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
	exhibitor, err := h.exhibitorService.GetByID(p, id, team)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exhibitor)
}

// ListExhibitors handles GET /exhibitors
// @Summary List exhibitors of the caller's team
// @Tags exhibitors
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{} "Exhibitors with pagination"
// @Security BearerAuth
// @Router /exhibitors [get]
func (h *ExhibitorHandler) ListExhibitors(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	team, ok := queryTeam(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)
	exhibitors, total, err := h.exhibitorService.List(p, team, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exhibitors": exhibitors,
		"meta":       ListMeta{Total: total, Page: page, PageSize: pageSize},
	})
}

// DeleteExhibitor handles DELETE /exhibitors/:id
// @Summary Delete an exhibitor
// @Description Fails while the exhibitor is still assigned to any shift
// @Tags exhibitors
// @Produce json
// @Param id path string true "Exhibitor ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Exhibitor not found"
// @Failure 409 {object} ErrorResponse "Exhibitor still assigned to shifts"
// @Security BearerAuth
// @Router /exhibitors/{id} [delete]
func (h *ExhibitorHandler) DeleteExhibitor(c *gin.Context) {
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
	if err := h.exhibitorService.Delete(p, id, team); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
