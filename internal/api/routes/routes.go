package routes

import (
	"github.com/adrianopellim/sra-educacional/internal/api/handlers"
	"github.com/adrianopellim/sra-educacional/internal/api/middleware"
	"github.com/adrianopellim/sra-educacional/internal/config"
	"github.com/adrianopellim/sra-educacional/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires the API. Every request re-authenticates or is
// implicitly trusted: the service issues no session token after login, so
// the admin and password routes carry no identity check. See README.md.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	atendimentoService := services.NewAtendimentoService(db)
	adminService := services.NewAdminService(db, authService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	atendimentoHandler := handlers.NewAtendimentoHandler(atendimentoService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Middleware
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.GET("/initial_data", adminHandler.InitialData)
		api.POST("/atendimentos", atendimentoHandler.Create)
		api.POST("/atendimentos/search", atendimentoHandler.Search)
		api.POST("/find_student", atendimentoHandler.FindStudent)
		api.POST("/change_password", authHandler.ChangePassword)

		admin := api.Group("/admin")
		{
			admin.POST("/:table", adminHandler.Create)
			admin.PUT("/:table/:id", adminHandler.Update)
			admin.DELETE("/:table/:id", adminHandler.Delete)
		}
	}
}
