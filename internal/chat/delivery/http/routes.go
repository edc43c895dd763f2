package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// chatMW is applied to POST /chat only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, chatMW ...gin.HandlerFunc) {
	rg.POST("/chat", append(chatMW, h.Chat)...)

	conversations := rg.Group("/conversations")
	{
		conversations.DELETE("", h.ClearAll)
		conversations.DELETE("/:phone", h.Clear)
	}
}
