package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"swiftinvoice-backend/config"
	"swiftinvoice-backend/models"
	"swiftinvoice-backend/routes"
	"swiftinvoice-backend/services"
	"swiftinvoice-backend/utils"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Client{},
		&models.Service{},
		&models.Invoice{},
		&models.InvoiceItem{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}

	overdue := services.NewOverdueService(config.DB)
	overdue.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
