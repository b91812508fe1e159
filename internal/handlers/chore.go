package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chorehub/chore-management-api/internal/dto"
	apierrors "github.com/chorehub/chore-management-api/internal/errors"
	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/chorehub/chore-management-api/internal/services"
)

// ChoreHandler coordinates chore and assignment HTTP handlers.
type ChoreHandler struct {
	choreService      *services.ChoreService
	suggestionService *services.ChoreSuggestionService
}

// NewChoreHandler creates a new ChoreHandler. suggestionService may be
// nil when no AI backend is configured.
func NewChoreHandler(choreService *services.ChoreService, suggestionService *services.ChoreSuggestionService) *ChoreHandler {
	return &ChoreHandler{
		choreService:      choreService,
		suggestionService: suggestionService,
	}
}

// ListChores returns the full chore catalog with assignees expanded.
func (h *ChoreHandler) ListChores(c *gin.Context) {
	chores, err := h.choreService.ListChores()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch chores")
		return
	}

	c.JSON(http.StatusOK, dto.ToChoreDTOs(chores))
}

// CreateChore adds a chore to the catalog.
func (h *ChoreHandler) CreateChore(c *gin.Context) {
	type CreateChoreRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		Points      int    `json:"points"`
	}

	var req CreateChoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	chore, err := h.choreService.CreateChore(services.CreateChoreInput{
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
	})
	if err != nil {
		respondChoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToChoreDTO(*chore))
}

// GetChore returns a single chore by ID.
func (h *ChoreHandler) GetChore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	chore, err := h.choreService.GetChore(id)
	if err != nil {
		respondChoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChoreDTO(*chore))
}

// UpdateChore applies partial updates to a chore.
func (h *ChoreHandler) UpdateChore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateChoreRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Points      *int    `json:"points"`
	}

	var req UpdateChoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	chore, err := h.choreService.UpdateChore(id, services.UpdateChoreInput{
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
	})
	if err != nil {
		respondChoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChoreDTO(*chore))
}

// DeleteChore removes a chore from the catalog.
func (h *ChoreHandler) DeleteChore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.choreService.DeleteChore(id); err != nil {
		respondChoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Chore deleted successfully",
	})
}

// Assign links a user to a chore.
func (h *ChoreHandler) Assign(c *gin.Context) {
	type AssignRequest struct {
		UserID  uint64                  `json:"user_id" binding:"required"`
		ChoreID uint64                  `json:"chore_id" binding:"required"`
		Status  models.AssignmentStatus `json:"status"`
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.choreService.Assign(services.AssignInput{
		UserID:  req.UserID,
		ChoreID: req.ChoreID,
		Status:  req.Status,
	})
	if err != nil {
		respondChoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentDTO(*assignment))
}

// Unassign removes every assignment linking a user to a chore.
func (h *ChoreHandler) Unassign(c *gin.Context) {
	type UnassignRequest struct {
		UserID  uint64 `json:"user_id" binding:"required"`
		ChoreID uint64 `json:"chore_id" binding:"required"`
	}

	var req UnassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.choreService.Unassign(req.UserID, req.ChoreID); err != nil {
		respondChoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Assignment removed successfully",
	})
}

// UpdateStatus transitions an assignment through its lifecycle.
// Completing a chore credits the assignee's wallet.
func (h *ChoreHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateStatusRequest struct {
		Status models.AssignmentStatus `json:"status" binding:"required"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.choreService.UpdateStatus(id, req.Status)
	if err != nil {
		respondChoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTO(*assignment))
}

// ChoresByUser returns the chores a user currently holds assignments for.
func (h *ChoreHandler) ChoresByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	chores, err := h.choreService.ChoresByUser(userID)
	if err != nil {
		respondChoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChoreDTOs(chores))
}

// AssignmentsByUser returns a user's assignment rows with chores expanded.
func (h *ChoreHandler) AssignmentsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	assignments, err := h.choreService.AssignmentsByUser(userID)
	if err != nil {
		respondChoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTOs(assignments))
}

// ChildAssignments returns every assignment held by a child account.
func (h *ChoreHandler) ChildAssignments(c *gin.Context) {
	assignments, err := h.choreService.ChildAssignments()
	if err != nil {
		respondChoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTOs(assignments))
}

// Generate proposes chores extracted from free text via the AI backend.
func (h *ChoreHandler) Generate(c *gin.Context) {
	if h.suggestionService == nil {
		apierrors.ServiceUnavailable(c, "Chore generation is not configured")
		return
	}

	type GenerateRequest struct {
		Text string `json:"text" binding:"required"`
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	suggestions, err := h.suggestionService.SuggestChores(c.Request.Context(), req.Text)
	if err != nil {
		apierrors.InternalError(c, "Failed to generate chores")
		return
	}

	chores := make([]dto.SuggestedChoreDTO, len(suggestions))
	for i, s := range suggestions {
		chores[i] = dto.SuggestedChoreDTO{
			Title:       s.Title,
			Description: s.Description,
			Points:      s.Points,
		}
	}

	c.JSON(http.StatusOK, gin.H{"chores": chores})
}

func respondChoreError(c *gin.Context, err error) {
	switch {
	case models.IsValidationError(err):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrChoreNotFound),
		errors.Is(err, services.ErrAssignmentNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
