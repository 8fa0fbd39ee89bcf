package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gamereviews/cache"
	"gamereviews/db"
	"gamereviews/handlers"
	"gamereviews/middleware"
	"gamereviews/monitoring"
	"gamereviews/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	utils.InitLogger()
	db.InitDB()
	handlers.Init(db.DB)
	monitoring.InitMetrics()

	if err := cache.InitRedis(); err != nil {
		utils.Log.Warn("Redis unavailable, running without cache: ", err)
	} else {
		defer cache.CloseRedis()
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(monitoring.PrometheusMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", monitoring.PrometheusHandler())

	r.GET("/games", handlers.GetGames)
	r.POST("/games", handlers.CreateGame)
	r.GET("/games/:id", handlers.GetGameByID)
	r.GET("/games/:id/reviews", handlers.GetGameReviews)
	r.POST("/games/:id/reviews", handlers.AppendGameReview)

	r.GET("/reviews", handlers.GetReviews)
	r.POST("/reviews", handlers.CreateReview)
	r.GET("/reviews/:id", handlers.GetReviewByID)
	r.GET("/reviews/:id/game", handlers.GetReviewGame)
	r.POST("/reviews/:id/game", handlers.AttachReviewGame)

	r.GET("/stats", handlers.GetStats)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Starting server on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
