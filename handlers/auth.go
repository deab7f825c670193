package handlers

import (
	"net/http"

	"regenmed/middleware"
	"regenmed/services/auth"
	"regenmed/session"
	"regenmed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler owns the Google authorization endpoints.
type AuthHandler struct {
	Manager      auth.Manager
	Store        session.Store
	ClientOrigin string
}

func NewAuthHandler(manager auth.Manager, store session.Store, clientOrigin string) *AuthHandler {
	return &AuthHandler{Manager: manager, Store: store, ClientOrigin: clientOrigin}
}

// GoogleAuthHandler redirects the visitor to the provider consent screen.
func (h *AuthHandler) GoogleAuthHandler(c *gin.Context) {
	c.Redirect(http.StatusFound, h.Manager.ConsentURL())
}

// OAuthCallbackHandler exchanges the authorization code and stores the
// resulting tokens on the visitor's session, then sends the browser back to
// the front-end origin.
func (h *AuthHandler) OAuthCallbackHandler(c *gin.Context) {
	logger := utils.GetLogger()

	code := c.Query("code")
	if code == "" {
		c.String(http.StatusBadRequest, "Authorization code missing.")
		return
	}

	tokens, err := h.Manager.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Error("Error exchanging authorization code", zap.Error(err))
		c.String(http.StatusInternalServerError, "Authentication failed.")
		return
	}

	sid := middleware.SessionID(c)
	if err := h.Store.SetTokens(c.Request.Context(), sid, tokens); err != nil {
		logger.Error("Failed to store session tokens", zap.Error(err))
		c.String(http.StatusInternalServerError, "Authentication failed.")
		return
	}

	logger.Info("Authentication successful, tokens stored in session")
	c.Redirect(http.StatusFound, h.ClientOrigin)
}

// AuthStatusHandler reports only whether the session carries tokens. Token
// contents never leave the server.
func (h *AuthHandler) AuthStatusHandler(c *gin.Context) {
	has, err := h.Store.HasTokens(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		utils.GetLogger().Error("Failed to read session state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session state."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAuthenticated": has})
}
