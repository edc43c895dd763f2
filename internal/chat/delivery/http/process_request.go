package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// processChatReq binds and validates the chat request body.
// A body that is not JSON is reported like missing fields. Binding goes
// through the context body cache, which the rate limiter may have filled.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.l.Warnf(c.Request.Context(), "chat.http.processChatReq: bind: %v", err)
		return req, errMissingFields
	}
	return req, req.validate()
}
