package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftchat/craftchat/engine/chat"
	"github.com/craftchat/craftchat/engine/infra/monitoring"
	"github.com/craftchat/craftchat/engine/mcserver"
	"github.com/craftchat/craftchat/engine/probe"
	"github.com/craftchat/craftchat/pkg/logger"
)

// ChatRequest is the JSON body of POST /chat_with_llm.
type ChatRequest struct {
	Message  string `json:"message"`
	ServerID string `json:"server_id"`
}

// ChatResponse is the success body of POST /chat_with_llm.
type ChatResponse struct {
	Reply          string              `json:"reply"`
	ServerDataUsed *probe.StatusResult `json:"server_data_used"`
}

// Handler serves the chat page and the chat endpoint.
type Handler struct {
	registry     *mcserver.Registry
	orchestrator *chat.Orchestrator
}

// NewHandler creates a chat handler.
func NewHandler(registry *mcserver.Registry, orchestrator *chat.Orchestrator) *Handler {
	return &Handler{registry: registry, orchestrator: orchestrator}
}

// Index renders the chat UI with the current server list for the
// selection control.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Servers": h.registry.List(),
	})
}

// ChatWithLLM runs one chat turn.
func (h *Handler) ChatWithLLM(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		monitoring.ChatTurnsTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request must be JSON", "details": err.Error()})
		return
	}

	out, err := h.orchestrator.Execute(c.Request.Context(), &chat.Input{
		Message:  req.Message,
		ServerID: req.ServerID,
	})
	if err != nil {
		var llmErr *chat.LLMError
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			monitoring.ChatTurnsTotal.WithLabelValues("empty_message").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "No message content provided"})
		case errors.Is(err, chat.ErrNoAPIKey):
			monitoring.ChatTurnsTotal.WithLabelValues("no_api_key").Inc()
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "OpenAI API key is not configured. Set it on the admin page.",
			})
		case errors.As(err, &llmErr):
			monitoring.ChatTurnsTotal.WithLabelValues("llm_error").Inc()
			log.Error("Chat turn failed", "error", llmErr)
			c.JSON(http.StatusInternalServerError, gin.H{"error": llmErr.Error()})
		default:
			monitoring.ChatTurnsTotal.WithLabelValues("llm_error").Inc()
			log.Error("Chat turn failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	monitoring.ChatTurnsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, ChatResponse{
		Reply:          out.Reply,
		ServerDataUsed: out.ServerDataUsed,
	})
}
