package routes

import (
	"agenda_backend/internal/handlers"
	"agenda_backend/internal/middleware"
	"agenda_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the engine.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, tokenRepo repositories.AccessTokenRepository) {
	r.GET("/files/*path", h.File.Serve)

	r.POST("/login", h.Auth.Login)
	r.POST("/register", h.Auth.Register)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(tokenRepo))
	{
		protected.GET("/user", h.User.Me)
		protected.POST("/update-profile", h.User.UpdateProfile)
		protected.PUT("/change-password", h.Auth.ChangePassword)
		protected.DELETE("/logout", h.Auth.Logout)
		protected.DELETE("/disable-user", h.Auth.DisableUser)
		protected.DELETE("/delete-user", h.Auth.DeleteUser)

		protected.GET("/events", h.Event.List)
		protected.GET("/events/:slug", h.Event.Get)
		protected.POST("/events", h.Event.Create)
		protected.POST("/events-update/:slug", h.Event.Update)
		protected.DELETE("/events/:slug", h.Event.Delete)
	}
}
