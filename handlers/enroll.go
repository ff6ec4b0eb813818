package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/strimtechdev/academy/enroll"
	"github.com/strimtechdev/academy/logging"
	"github.com/strimtechdev/academy/monitoring"
	"github.com/strimtechdev/academy/registration"
)

// Enroll is the gateway deployment mode: it validates the required fields
// and relays the payload to the enrollment backend, for clients that
// cannot call the backend directly (CORS).
func (h *Handlers) Enroll(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error reading request"})
		return
	}

	var reg registration.Registration
	if err := json.Unmarshal(body, &reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}

	// First missing required field terminates the request before any
	// outbound call.
	if missing := reg.FirstMissing(); missing != "" {
		monitoring.EnrollmentsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": missing + " is required",
		})
		return
	}

	id := uuid.NewString()
	logging.Logger.Info("enrollment received",
		zap.String("submission_id", id),
		zap.String("course", reg.CourseID),
		zap.String("ref", reg.Ref),
	)

	data, err := h.submitter.Submit(c.Request.Context(), reg)
	if err != nil {
		var se *enroll.Error
		if errors.As(err, &se) && se.Status != 0 {
			monitoring.EnrollmentsTotal.WithLabelValues("rejected").Inc()
			logging.Logger.Warn("enrollment rejected",
				zap.String("submission_id", id),
				zap.Int("status", se.Status),
				zap.String("message", se.Message),
			)
			c.JSON(se.Status, gin.H{"success": false, "message": se.Message})
			return
		}
		monitoring.EnrollmentsTotal.WithLabelValues("error").Inc()
		logging.Logger.Error("enrollment forwarding failed",
			zap.String("submission_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": enroll.MsgTransport,
		})
		return
	}

	monitoring.EnrollmentsTotal.WithLabelValues("accepted").Inc()
	h.notifier.EnrollmentReceived(reg)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
