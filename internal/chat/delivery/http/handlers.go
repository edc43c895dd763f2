package http

import (
	"github.com/gin-gonic/gin"

	"delivery-agent/pkg/response"
)

// Chat godoc
// @Summary     Send a message to the delivery agent
// @Description Runs one conversation turn for the phone number and returns the agent reply and the tools it used.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Customer message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.ErrorBody "Missing required fields"
// @Failure     429  {object} response.Resp "Too many requests"
// @Failure     500  {object} response.ErrorBody "Internal Server Error"
// @Router      /agent/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.RawError(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.RawError(c, h.mapError(err))
		return
	}

	response.Raw(c, h.newChatResp(output))
}

// Clear godoc
// @Summary     Clear one conversation
// @Description Drops the stored memory of a phone number. The next message starts a fresh conversation.
// @Tags        Agent
// @Produce     json
// @Param       phone path string true "Phone number"
// @Success     200 {object} clearResp
// @Failure     400 {object} response.ErrorBody "Bad Request"
// @Router      /agent/conversations/{phone} [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ClearConversation(ctx, c.Param("phone"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearConversation: %v", err)
		response.RawError(c, h.mapError(err))
		return
	}

	response.Raw(c, h.newClearResp(output))
}

// ClearAll godoc
// @Summary     Clear all conversations
// @Description Drops the stored memory of every phone number.
// @Tags        Agent
// @Produce     json
// @Success     200 {object} clearResp
// @Router      /agent/conversations [DELETE]
func (h *handler) ClearAll(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ClearAllConversations(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearAllConversations: %v", err)
		response.RawError(c, h.mapError(err))
		return
	}

	response.Raw(c, h.newClearResp(output))
}
