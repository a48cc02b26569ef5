package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/schemas"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/service"
)

// ResultsController serves the call-history mirror and the transient
// notifications the poller raised.
type ResultsController struct {
	Poller        *service.HistoryPoller
	Notifications *service.NotificationManager
	Logger        *logrus.Logger
}

// NewResultsController creates a results controller.
func NewResultsController(poller *service.HistoryPoller, notifications *service.NotificationManager, log *logrus.Logger) *ResultsController {
	return &ResultsController{Poller: poller, Notifications: notifications, Logger: log}
}

// @Summary Call history
// @Description Returns the latest polled snapshot of the backend call log, newest first
// @Tags results
// @Produce json
// @Success 200 {array} models.CallRecord
// @Router /call-history [get]
func (c *ResultsController) History(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Poller.Records())
}

// @Summary Active notifications
// @Tags results
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (c *ResultsController) ActiveNotifications(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Notifications.Active())
}

// @Summary Dismiss a notification
// @Description Removes the notification and cancels its timers; unknown ids are a no-op
// @Tags results
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} schemas.MessageResponse
// @Router /notifications/{id} [delete]
func (c *ResultsController) Dismiss(ctx *gin.Context) {
	c.Notifications.Dismiss(ctx.Param("id"))
	ctx.JSON(http.StatusOK, schemas.MessageResponse{Message: "Notification dismissed"})
}
