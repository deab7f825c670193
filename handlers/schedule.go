package handlers

import (
	"errors"
	"net/http"

	"regenmed/middleware"
	"regenmed/models"
	"regenmed/services/schedule"
	"regenmed/session"
	"regenmed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler runs the booking flow for the current session.
type ScheduleHandler struct {
	Store     session.Store
	Scheduler schedule.Service
}

func NewScheduleHandler(store session.Store, scheduler schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{Store: store, Scheduler: scheduler}
}

// ScheduleAppointmentHandler loads the session and hands the request to the
// orchestrator, which gates on authorization before validating any field.
func (h *ScheduleHandler) ScheduleAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Malformed bodies still hit the authorization gate first; the
		// orchestrator sees an empty request.
		logger.Warn("Unparseable schedule request body", zap.Error(err))
		req = models.ScheduleRequest{}
	}

	sid := middleware.SessionID(c)
	sess, err := h.Store.Get(c.Request.Context(), sid)
	if err != nil {
		logger.Error("Failed to load session", zap.String("sessionId", sid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule appointment or send confirmation."})
		return
	}

	outcome, err := h.Scheduler.Schedule(c.Request.Context(), sess, req)
	if err != nil {
		h.renderScheduleError(c, err)
		return
	}

	logger.Info("Appointment scheduled",
		zap.String("eventId", outcome.EventID),
		zap.String("link", outcome.EventLink))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment scheduled successfully! Confirmation email sent.",
	})
}

func (h *ScheduleHandler) renderScheduleError(c *gin.Context, err error) {
	logger := utils.GetLogger()

	var schedErr *schedule.ScheduleError
	if errors.As(err, &schedErr) {
		switch schedErr.Code {
		case schedule.CodeUnauthorized:
			c.JSON(http.StatusUnauthorized, gin.H{"error": schedErr.Message})
			return
		case schedule.CodeInvalidRequest:
			c.JSON(http.StatusBadRequest, gin.H{"error": schedErr.Message})
			return
		}
	}

	// Upstream details go to the log, never to the caller.
	logger.Error("Error scheduling appointment", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule appointment or send confirmation."})
}
