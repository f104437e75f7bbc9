package routes

import (
	"net/http"
	"time"

	"schedly/handlers"
	"schedly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes sets up the conversational scheduling endpoints.
func RegisterChatRoutes(r *gin.Engine, chat *handlers.ChatHandler) {
	api := r.Group("/api/chat")
	{
		api.POST("", chat.HandleTurn)
		api.DELETE("/:conversationID", chat.ResetConversation)
	}
}

// RegisterAppointmentRoutes sets up the appointment views.
func RegisterAppointmentRoutes(r *gin.Engine, appts *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.GET("", appts.ListAppointments)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, chat *handlers.ChatHandler, appts *handlers.AppointmentHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, chat)
	RegisterAppointmentRoutes(r, appts)
	RegisterHealthRoute(r)
}
