// File: regenmed/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Authorization endpoints.
	GoogleAuthHandler    gin.HandlerFunc
	OAuthCallbackHandler gin.HandlerFunc
	AuthStatusHandler    gin.HandlerFunc

	// Chat endpoint.
	ChatMessageHandler gin.HandlerFunc

	// Scheduling endpoint.
	ScheduleAppointmentHandler gin.HandlerFunc
}
