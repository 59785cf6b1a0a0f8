package main

import (
	"log"
	"net/http"
	"os"

	"resort/config"
	"resort/jobs"
	"resort/models"
	"resort/routes"
	"resort/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.Room{}, &models.User{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	if err := services.SeedRoomsIfEmpty(config.DB); err != nil {
		log.Fatalf("Failed to seed rooms: %v", err)
	}
	if err := services.SeedUsersIfEmpty(config.DB); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	services.SetStrictOverlap(os.Getenv("BOOKING_STRICT_OVERLAP") == "true")

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
