package routes

import (
	"resort/controllers"
	middlewares "resort/middleware"
	"resort/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, m *melody.Melody) {

	bookingController := controllers.NewBookingController(db, m, logger.NewDefaultLogger(logger.InfoLevel))

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/rooms", controllers.GetAllRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.GET("/roomOnDate", controllers.GetRoomStatusByDate)
	v1.GET("/summary", controllers.GetSummary)
	v1.GET("/timeline", controllers.GetTimeline)
	v1.GET("/searchGuest", middlewares.AuthMiddleware(1, 2), controllers.SearchGuest)

	v1.POST("/booking", middlewares.AuthMiddleware(1, 2), bookingController.CreateBooking)
	v1.POST("/bookingContinue", middlewares.AuthMiddleware(1, 2), bookingController.ContinueBooking)
	v1.PUT("/checkin", middlewares.AuthMiddleware(1, 2), bookingController.CheckIn)
	v1.PUT("/checkout", middlewares.AuthMiddleware(1, 2), bookingController.CheckOut)
	v1.PUT("/cleaned", middlewares.AuthMiddleware(1, 2), bookingController.MarkCleaned)
	v1.PUT("/bookingGuest", middlewares.AuthMiddleware(1, 2), bookingController.UpdateGuest)
	v1.DELETE("/booking", middlewares.AuthMiddleware(1), bookingController.CancelBooking)
	v1.POST("/roomsReset", middlewares.AuthMiddleware(1), bookingController.ResetRooms)
}
