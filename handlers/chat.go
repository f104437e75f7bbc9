package handlers

import (
	"net/http"
	"time"

	"schedly/models"
	"schedly/services/scheduling"
	"schedly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the negotiation engine as one-turn request/response
// calls. All conversation state lives in the session store, keyed by the
// conversation id the client threads through.
type ChatHandler struct {
	Service scheduling.NegotiationService
	Logger  *zap.Logger
}

func NewChatHandler(service scheduling.NegotiationService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: service, Logger: logger}
}

// HandleTurn resolves a single conversational turn.
func (h *ChatHandler) HandleTurn(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	resolution, err := h.Service.ResolveTurn(c.Request.Context(), conversationID, req.Message, time.Now())
	if err != nil {
		h.Logger.Error("failed to resolve turn",
			zap.String("conversationId", conversationID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
		return
	}

	resp := models.ChatResponse{
		ConversationID: conversationID,
		Status:         resolution.Status,
		Message:        resolution.Message,
		Slot:           resolution.Slot,
		ErrorKind:      resolution.ErrorKind,
	}
	for _, alt := range resolution.Alternatives {
		resp.Alternatives = append(resp.Alternatives, alt.Render())
	}

	c.JSON(http.StatusOK, resp)
}

// ResetConversation discards a pending negotiation so the next message is
// treated as a fresh request.
func (h *ChatHandler) ResetConversation(c *gin.Context) {
	conversationID := c.Param("conversationID")
	if err := h.Service.Reset(c.Request.Context(), conversationID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to reset conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversationId": conversationID, "status": "reset"})
}
