package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"peakparty/internal/models/request_models"
	"peakparty/internal/services"
	"peakparty/pkg/utils"
)

type PartiesController struct {
	partyService services.PartyServiceInterface
}

func NewPartiesController(partyService services.PartyServiceInterface) *PartiesController {
	return &PartiesController{
		partyService: partyService,
	}
}

// ListByLocation godoc
// @Summary Parties at a location
// @Description Display-ready party list with leader names, member counts and the caller's membership flag
// @Tags Parties
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} utils.APIResponse
// @Router /locations/{id}/parties [get]
func (p *PartiesController) ListByLocation(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	parties, err := p.partyService.AggregateByLocation(c.Request.Context(), locationID, optionalUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, parties, "Parties fetched successfully")
}

// GetPartyDetail godoc
// @Summary Party detail
// @Tags Parties
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} utils.APIResponse
// @Router /parties/{id} [get]
func (p *PartiesController) GetPartyDetail(c *gin.Context) {
	detail, err := p.partyService.GetPartyDetail(c.Request.Context(), c.Param("id"), optionalUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Party fetched successfully")
}

// CreateParty godoc
// @Summary Create a party
// @Description Creates the party and auto-enrolls the leader as its first member
// @Tags Parties
// @Accept json
// @Produce json
// @Param request body request_models.CreatePartyRequest true "Party payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /parties [post]
func (p *PartiesController) CreateParty(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "You must be logged in to create a party")
		return
	}

	var req request_models.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	partyID, err := p.partyService.CreateParty(
		c.Request.Context(), userID,
		req.Name, req.LocationID, req.TripDate, req.TripDuration, req.Description,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": partyID}, "Party created successfully")
}

// JoinParty godoc
// @Summary Join a party
// @Tags Parties
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /parties/{id}/join [post]
func (p *PartiesController) JoinParty(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "You must be logged in to join a party")
		return
	}

	if err := p.partyService.JoinParty(c.Request.Context(), c.Param("id"), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Joined party successfully")
}

// DeleteParty godoc
// @Summary Delete a party
// @Description Leader-only; memberships and messages go with it
// @Tags Parties
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /parties/{id} [delete]
func (p *PartiesController) DeleteParty(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "You must be logged in to delete a party")
		return
	}

	if err := p.partyService.DeleteParty(c.Request.Context(), c.Param("id"), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Party deleted successfully")
}
