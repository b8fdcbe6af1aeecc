package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peakparty/internal/models/request_models"
	"peakparty/internal/services"
	"peakparty/pkg/utils"
)

type ProfilesController struct {
	profileService services.ProfileServiceInterface
}

func NewProfilesController(profileService services.ProfileServiceInterface) *ProfilesController {
	return &ProfilesController{
		profileService: profileService,
	}
}

// GetMe godoc
// @Summary Own profile
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/me [get]
func (p *ProfilesController) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "You must be logged in to view your profile")
		return
	}

	profile, err := p.profileService.GetOwn(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateMe godoc
// @Summary Save own profile
// @Description Upserts the caller's profile; only its owner can write it
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body request_models.UpsertProfileRequest true "Profile payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/me [put]
func (p *ProfilesController) UpdateMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "You must be logged in to edit your profile")
		return
	}

	var req request_models.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.profileService.UpsertOwn(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile updated successfully")
}
