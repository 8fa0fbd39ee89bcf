package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gamereviews/cache"
	"gamereviews/utils"
)

type dashboardStats struct {
	TotalGames   int64   `json:"total_games"`
	TotalReviews int64   `json:"total_reviews"`
	AverageScore float64 `json:"average_score"`
}

// GetStats returns catalog statistics with Redis caching
func GetStats(c *gin.Context) {
	if cache.IsRedisAvailable() {
		var cached dashboardStats
		if err := cache.GetStats(&cached); err == nil {
			utils.Log.Debug("Cache HIT: dashboard stats")
			c.JSON(http.StatusOK, gin.H{"statistics": cached})
			return
		}
	}

	start := time.Now()

	totalGames, err := Games.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate stats"})
		return
	}
	totalReviews, err := Reviews.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate stats"})
		return
	}
	avgScore, err := Reviews.AverageScore()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate stats"})
		return
	}

	stats := dashboardStats{
		TotalGames:   totalGames,
		TotalReviews: totalReviews,
		AverageScore: avgScore,
	}

	if cache.IsRedisAvailable() {
		cache.SetStats(stats)
	}

	c.JSON(http.StatusOK, gin.H{
		"statistics":       stats,
		"calculation_time": time.Since(start).String(),
	})
}
