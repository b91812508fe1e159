package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chorehub/chore-management-api/internal/dto"
	apierrors "github.com/chorehub/chore-management-api/internal/errors"
	"github.com/chorehub/chore-management-api/internal/models"
	"github.com/chorehub/chore-management-api/internal/services"
)

// RewardHandler coordinates reward catalog and redemption HTTP handlers.
type RewardHandler struct {
	rewardService *services.RewardService
}

// NewRewardHandler creates a new RewardHandler.
func NewRewardHandler(rewardService *services.RewardService) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
	}
}

// ListRewards returns the reward catalog.
func (h *RewardHandler) ListRewards(c *gin.Context) {
	rewards, err := h.rewardService.ListRewards()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch rewards")
		return
	}

	c.JSON(http.StatusOK, dto.ToRewardDTOs(rewards))
}

// CreateReward adds a reward to the catalog.
func (h *RewardHandler) CreateReward(c *gin.Context) {
	type CreateRewardRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		Points      int    `json:"points"`
	}

	var req CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	reward, err := h.rewardService.CreateReward(services.CreateRewardInput{
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
	})
	if err != nil {
		respondRewardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRewardDTO(*reward))
}

// GetReward returns a single catalog reward by ID.
func (h *RewardHandler) GetReward(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reward, err := h.rewardService.GetReward(id)
	if err != nil {
		respondRewardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRewardDTO(*reward))
}

// DeleteReward deletes a user's owned reward instance when the userId
// query parameter is present, otherwise it removes the catalog entry.
// Deleting an owned instance never touches the catalog.
func (h *RewardHandler) DeleteReward(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userIDStr := c.Query("userId")
	if userIDStr == "" {
		if err := h.rewardService.DeleteReward(id); err != nil {
			respondRewardError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Reward deleted successfully",
		})
		return
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid userId")
		return
	}

	reward, err := h.rewardService.DeleteUserReward(id, userID)
	if err != nil {
		respondRewardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRewardDTO(*reward))
}

// Redeem exchanges wallet points for a reward.
func (h *RewardHandler) Redeem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type RedeemRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userReward, err := h.rewardService.Redeem(req.UserID, id)
	if err != nil {
		respondRewardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserRewardDTO(*userReward))
}

// RedeemedUsers returns the distinct users who redeemed a reward.
func (h *RewardHandler) RedeemedUsers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	users, err := h.rewardService.RedeemedUsers(id)
	if err != nil {
		respondRewardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// RewardsByUser returns the rewards a user owns.
func (h *RewardHandler) RewardsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rewards, err := h.rewardService.RewardsByUser(userID)
	if err != nil {
		respondRewardError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRewardDTOs(rewards))
}

func respondRewardError(c *gin.Context, err error) {
	switch {
	case models.IsValidationError(err):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInsufficientPoints):
		apierrors.InsufficientPoints(c, err.Error())
	case errors.Is(err, services.ErrRewardNotFound),
		errors.Is(err, services.ErrUserRewardNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
