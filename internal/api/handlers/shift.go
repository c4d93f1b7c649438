package handlers

import (
	"net/http"

	"turnos-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles HTTP requests for shift operations
type ShiftHandler struct {
	shiftService *service.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// CreateShift handles POST /shifts
// @Summary Create a shift
// @Description Create a shift on a free (date, time range, place) slot
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data"
// @Success 201 {object} models.Shift "Successfully created shift"
// @Failure 400 {object} ErrorResponse "Invalid request body or time range"
// @Failure 409 {object} ErrorResponse "Slot already taken"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	shift, err := h.shiftService.Create(p, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// GetShift handles GET /shifts/:id
// @Summary Get shift by ID
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} models.Shift "Shift with assignments"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
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
	shift, err := h.shiftService.GetByID(p, id, team)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// ListShifts handles GET /shifts
// @Summary List shifts
// @Description List shifts of the caller's team, optionally narrowed by place and date range
// @Tags shifts
// @Produce json
// @Param place_id query string false "Place ID"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Shifts with pagination"
// @Security BearerAuth
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req service.ListShiftsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	shifts, total, err := h.shiftService.List(p, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"shifts": shifts,
		"meta":   ListMeta{Total: total, Page: req.Page, PageSize: req.PageSize},
	})
}

// DeleteShift handles DELETE /shifts/:id
// @Summary Delete a shift
// @Description Delete a shift, cascading its assignment and ledger rows
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
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
	if err := h.shiftService.Delete(p, id, team); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignUser handles POST /shifts/:id/volunteers/:userId
// @Summary Assign a volunteer to a shift
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} models.Shift "Shift with recomputed state"
// @Failure 404 {object} ErrorResponse "Shift or user not found"
// @Failure 409 {object} ErrorResponse "Place capacity exhausted"
// @Security BearerAuth
// @Router /shifts/{id}/volunteers/{userId} [post]
func (h *ShiftHandler) AssignUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	team, ok := queryTeam(c)
	if !ok {
		return
	}
	shift, err := h.shiftService.AssignUser(p, id, userID, team)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// UnassignUser handles DELETE /shifts/:id/volunteers/:userId
// @Summary Remove a volunteer from a shift
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} models.Shift "Shift with recomputed state"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id}/volunteers/{userId} [delete]
func (h *ShiftHandler) UnassignUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	team, ok := queryTeam(c)
	if !ok {
		return
	}
	shift, err := h.shiftService.UnassignUser(p, id, userID, team)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// AssignExhibitor handles POST /shifts/:id/exhibitors/:exhibitorId
// @Summary Assign an exhibitor to a shift
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param exhibitorId path string true "Exhibitor ID (UUID)"
// @Success 204 "Assigned"
// @Failure 404 {object} ErrorResponse "Shift or exhibitor not found"
// @Security BearerAuth
// @Router /shifts/{id}/exhibitors/{exhibitorId} [post]
func (h *ShiftHandler) AssignExhibitor(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	exhibitorID, ok := pathID(c, "exhibitorId")
	if !ok {
		return
	}
	team, ok := queryTeam(c)
	if !ok {
		return
	}
	if err := h.shiftService.AssignExhibitor(p, id, exhibitorID, team); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnassignExhibitor handles DELETE /shifts/:id/exhibitors/:exhibitorId
// @Summary Remove an exhibitor from a shift
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param exhibitorId path string true "Exhibitor ID (UUID)"
// @Success 204 "Removed"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id}/exhibitors/{exhibitorId} [delete]
func (h *ShiftHandler) UnassignExhibitor(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	exhibitorID, ok := pathID(c, "exhibitorId")
	if !ok {
		return
	}
	team, ok := queryTeam(c)
	if !ok {
		return
	}
	if err := h.shiftService.UnassignExhibitor(p, id, exhibitorID, team); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateShifts handles POST /shifts/generate
// @Summary Generate shifts from a recurrence pattern
// @Description Produce one shift per time slot per day; existing slots are skipped
// @Tags shifts
// @Accept json
// @Produce json
// @Param pattern body service.GeneratePattern true "Generation pattern"
// @Success 200 {object} service.GenerateResult "Created and skipped counts"
// @Failure 400 {object} ErrorResponse "Invalid pattern"
// @Security BearerAuth
// @Router /shifts/generate [post]
func (h *ShiftHandler) GenerateShifts(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var pattern service.GeneratePattern
	if err := c.ShouldBindJSON(&pattern); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	result, err := h.shiftService.Generate(p, &pattern)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
