package routes

import (
	"time"

	"regenmed/handlers"
	"regenmed/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the Google authorization endpoints. The
// consent and callback routes sit at the root because Google redirects to
// them directly.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/auth/google", hb.GoogleAuthHandler)
	r.GET("/oauth2callback", hb.OAuthCallbackHandler)
	r.GET("/api/auth/status", hb.AuthStatusHandler)
}

// RegisterChatRoutes registers the chat relay endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", hb.ChatMessageHandler)
}

// RegisterScheduleRoutes registers the scheduling endpoint.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/schedule", hb.ScheduleAppointmentHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", utils.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// CORS is locked to the single front-end origin; the session cookie needs
// credentialed requests, which a wildcard origin cannot carry.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, clientOrigin string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterHealthRoute(r)
}
