package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/upgoma/upg-portal/internal/app/controllers"
	"github.com/upgoma/upg-portal/internal/app/models/dto"
	"github.com/upgoma/upg-portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	newsController *controllers.NewsController,
	authController *controllers.AuthController,
	registrationController *controllers.RegistrationController,
	chatController *controllers.ChatController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	catalog := v1.Group("/catalog")
	{
		catalog.GET("/contact", catalogController.GetContact)
		catalog.GET("/navigation", catalogController.GetNavigation)
		catalog.GET("/faculties", catalogController.GetAllFaculties)
		catalog.GET("/faculties/:id", catalogController.GetFacultyByID)
		catalog.GET("/team", catalogController.GetTeam)
		catalog.GET("/advantages", catalogController.GetAdvantages)
		catalog.GET("/admission-documents", catalogController.GetAdmissionDocuments)
	}

	// --- Public news feed ---
	news := v1.Group("/news")
	{
		news.GET("", newsController.ListNews)
		news.GET("/:id", newsController.GetNewsByID)
	}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Admission workflow ---
	drafts := v1.Group("/registrations/drafts")
	{
		drafts.POST("", registrationController.CreateDraft)
		drafts.GET("/:id", registrationController.GetDraft)
		drafts.PUT("/:id/identity", registrationController.SetIdentity)
		drafts.PUT("/:id/academic", registrationController.SetAcademic)
		drafts.PUT("/:id/documents", registrationController.SetDocuments)
		drafts.POST("/:id/back", registrationController.Back)
		drafts.POST("/:id/submit", registrationController.Submit)
	}

	// --- Assistant chat ---
	chat := v1.Group("/chat/sessions")
	{
		chat.POST("", chatController.CreateSession)
		chat.GET("/:id", chatController.GetSession)
		chat.POST("/:id/messages", chatController.SendMessage)
	}

	// --- Publishing surface, restricted to the administrator ---
	newsProtected := v1.Group("/news")
	newsProtected.Use(authMiddleware.AdminRequired())
	{
		newsProtected.POST("", newsController.PublishNews)
		newsProtected.POST("/format", newsController.FormatText)
	}

	registrationsProtected := v1.Group("/registrations")
	registrationsProtected.Use(authMiddleware.AdminRequired())
	{
		registrationsProtected.GET("/summary", registrationController.GetSummary)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
