package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peakparty/internal/models/request_models"
	"peakparty/internal/services"
	"peakparty/pkg/utils"
)

type MessagesController struct {
	messageService services.MessageServiceInterface
}

func NewMessagesController(messageService services.MessageServiceInterface) *MessagesController {
	return &MessagesController{
		messageService: messageService,
	}
}

// ListMessages godoc
// @Summary Party message thread
// @Description Messages in creation order with resolved author names
// @Tags Messages
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} utils.APIResponse
// @Router /parties/{id}/messages [get]
func (m *MessagesController) ListMessages(c *gin.Context) {
	messages, err := m.messageService.ListByParty(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Messages fetched successfully")
}

// PostMessage godoc
// @Summary Post a message
// @Description Members only; blank content rejected before any write
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Party ID"
// @Param request body request_models.PostMessageRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /parties/{id}/messages [post]
func (m *MessagesController) PostMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "You must be a member to post")
		return
	}

	var req request_models.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := m.messageService.PostMessage(c.Request.Context(), c.Param("id"), userID, req.Content); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Message posted successfully")
}
