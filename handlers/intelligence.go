package handlers

import (
	"context"
	"net/http"
	"time"

	"apptchat/middleware"
	"apptchat/models"
	"apptchat/services/appointment"
	ai "apptchat/services/intelligence"
	"apptchat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the conversational booking endpoint.
type ChatHandler struct {
	Appointments appointment.AppointmentService
	Extractor    ai.IntentExtractor
	History      ai.HistoryStore // optional
}

func NewChatHandler(appointments appointment.AppointmentService, extractor ai.IntentExtractor, history ai.HistoryStore) *ChatHandler {
	return &ChatHandler{
		Appointments: appointments,
		Extractor:    extractor,
		History:      history,
	}
}

// HandleChat handles POST /chat. Business outcomes are always reported with
// 200 and a text response; only store failures produce an error status.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := getLogger(c)
	ctx := c.Request.Context()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Chat request without a usable JSON body, treating message as empty", zap.Error(err))
	}

	intent := h.Extractor.Extract(ctx, req.Message)

	responseText, err := h.dispatch(ctx, intent)
	if err != nil {
		logger.Error("Failed to apply chat intent", zap.String("action", string(intent.Action)), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update appointments", err.Error())
		return
	}

	schedule, err := h.Appointments.Schedule(ctx)
	if err != nil {
		logger.Error("Failed to load schedule", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load schedule", err.Error())
		return
	}

	h.record(ctx, logger, middleware.ClientIP(c), models.ChatExchange{
		Message:  req.Message,
		Action:   intent.Action,
		Response: responseText,
		At:       time.Now().UTC(),
	})

	c.JSON(http.StatusOK, models.ChatResponse{Response: responseText, Schedule: schedule})
}

func (h *ChatHandler) dispatch(ctx context.Context, intent models.Intent) (string, error) {
	switch intent.Action {
	case models.ActionBook:
		free, err := h.Appointments.IsAvailable(ctx, intent.Date, intent.Time)
		if err != nil {
			return "", err
		}
		if !free {
			return appointment.MsgSlotUnavailable, nil
		}
		res, err := h.Appointments.Book(ctx, intent.Name, intent.Date, intent.Time)
		if err != nil {
			return "", err
		}
		return res.Message, nil

	case models.ActionCancel:
		res, err := h.Appointments.Cancel(ctx, intent.Name, intent.Date, intent.Time)
		if err != nil {
			return "", err
		}
		return res.Message, nil

	case models.ActionReschedule:
		res, err := h.Appointments.Reschedule(ctx, intent.Name, intent.Date, intent.Time, intent.NewDate, intent.NewTime)
		if err != nil {
			return "", err
		}
		return res.Message, nil

	case models.ActionUnknown:
		return appointment.MsgNotUnderstood, nil

	default:
		return appointment.MsgNotUnderstood, nil
	}
}

func (h *ChatHandler) record(ctx context.Context, logger *zap.Logger, clientID string, exchange models.ChatExchange) {
	if h.History == nil {
		return
	}
	if err := h.History.Append(ctx, clientID, exchange); err != nil {
		logger.Warn("Failed to record chat exchange", zap.String("client", clientID), zap.Error(err))
	}
}

// HandleHistory handles GET /chat/history and returns the caller's recent exchanges.
func (h *ChatHandler) HandleHistory(c *gin.Context) {
	logger := getLogger(c)
	if h.History == nil {
		c.JSON(http.StatusOK, gin.H{"history": []models.ChatExchange{}})
		return
	}

	clientID := middleware.ClientIP(c)
	history, err := h.History.Recent(c.Request.Context(), clientID)
	if err != nil {
		logger.Error("Failed to load chat history", zap.String("client", clientID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load chat history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
