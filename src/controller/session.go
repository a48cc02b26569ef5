package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/schemas"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/storage"
)

// SessionController handles login, logout and session inspection.
type SessionController struct {
	Store  *storage.SessionStore
	Logger *logrus.Logger
}

// NewSessionController creates a session controller backed by the given store.
func NewSessionController(store *storage.SessionStore, log *logrus.Logger) *SessionController {
	return &SessionController{Store: store, Logger: log}
}

// @Summary Log in
// @Description Creates and persists a user session; the theme is derived from the category
// @Tags session
// @Accept json
// @Produce json
// @Param LoginRequest body schemas.LoginRequest true "Login Request"
// @Success 200 {object} schemas.SessionResponse
// @Failure 400 {object} schemas.ErrorResponse
// @Router /login [post]
func (c *SessionController) Login(ctx *gin.Context) {
	var req schemas.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendError(ctx, c.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), "/login"))
		return
	}

	category := models.Category(req.Category)
	if !category.Valid() {
		sendError(ctx, c.Logger, schemas.NewBadRequestError(
			fmt.Sprintf("unknown category %q", req.Category), "/login"))
		return
	}

	username := req.Username
	if username == "" {
		username = fmt.Sprintf("%s-%s-demo-acc", category, req.Subcategory)
	}

	session := &models.UserSession{
		Category:    category,
		Subcategory: req.Subcategory,
		Username:    username,
		Theme:       models.ThemeForCategory(category),
	}

	if err := c.Store.Save(session); err != nil {
		sendDomainError(ctx, c.Logger, err, "/login")
		return
	}

	c.Logger.Info("User logged in: ", session.Username)
	ctx.JSON(http.StatusOK, schemas.SessionResponse{
		Session:        session,
		AccentColor:    session.AccentColor(),
		SecondaryColor: session.SecondaryColor(),
	})
}

// @Summary Log out
// @Description Destroys the persisted session
// @Tags session
// @Produce json
// @Success 200 {object} schemas.MessageResponse
// @Router /logout [post]
func (c *SessionController) Logout(ctx *gin.Context) {
	if err := c.Store.Clear(); err != nil {
		sendDomainError(ctx, c.Logger, err, "/logout")
		return
	}
	ctx.JSON(http.StatusOK, schemas.MessageResponse{Message: "Logged out"})
}

// @Summary Current session
// @Description Returns the active session with its theme-derived colors
// @Tags session
// @Produce json
// @Success 200 {object} schemas.SessionResponse
// @Failure 401 {object} schemas.ErrorResponse
// @Router /session [get]
func (c *SessionController) Current(ctx *gin.Context) {
	session := c.Store.Load()
	if session == nil {
		sendError(ctx, c.Logger, schemas.NewUnauthorizedError("no active session", "/session"))
		return
	}
	ctx.JSON(http.StatusOK, schemas.SessionResponse{
		Session:        session,
		AccentColor:    session.AccentColor(),
		SecondaryColor: session.SecondaryColor(),
	})
}
