package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"swiftinvoice-backend/config"
	"swiftinvoice-backend/controllers"
	"swiftinvoice-backend/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	r.Use(config.PerformanceLogger())

	// Identity is delegated to the external provider; the middleware only
	// verifies its tokens, and only when a secret is configured.
	r.Use(utils.AuthMiddleware())

	clients := r.Group("/clients")
	{
		clients.GET("", controllers.GetClients)
		clients.POST("", controllers.CreateClient)
		clients.PUT("/:id", controllers.UpdateClient)
		clients.DELETE("/:id", controllers.DeleteClient)
	}

	services := r.Group("/services")
	{
		services.GET("", controllers.GetServices)
		services.POST("", controllers.CreateService)
	}

	invoices := r.Group("/invoices")
	{
		invoices.GET("", controllers.GetInvoices)
		invoices.POST("", controllers.CreateInvoice)
		invoices.GET("/:id/download", controllers.DownloadInvoice)
		invoices.PATCH("/:id/status", controllers.UpdateInvoiceStatus)
		invoices.DELETE("/:id", controllers.DeleteInvoice)
	}

	return r
}
