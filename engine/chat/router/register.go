package router

import (
	"github.com/gin-gonic/gin"

	"github.com/craftchat/craftchat/engine/chat"
	"github.com/craftchat/craftchat/engine/mcserver"
)

// RegisterRoutes registers the chat page and endpoint.
func RegisterRoutes(router *gin.Engine, registry *mcserver.Registry, orchestrator *chat.Orchestrator) {
	handler := NewHandler(registry, orchestrator)
	router.GET("/", handler.Index)
	router.POST("/chat_with_llm", handler.ChatWithLLM)
}
