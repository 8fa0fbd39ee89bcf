package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamereviews/cache"
	"gamereviews/models"
	"gamereviews/store"
	"gamereviews/utils"
)

// GetGames lists the catalog; ?q= searches title and genre
func GetGames(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		games, err := Games.Search(query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search games"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"query":       query,
			"results":     games,
			"total_found": len(games),
		})
		return
	}

	if cache.IsRedisAvailable() {
		var cached []models.Game
		if err := cache.GetGames(&cached); err == nil {
			utils.Log.Debug("Cache HIT: games list")
			c.JSON(http.StatusOK, cached)
			return
		}
		utils.Log.Debug("Cache MISS: games list")
	}

	games, err := Games.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetGames(games)
	}

	c.JSON(http.StatusOK, games)
}

// CreateGame with cache invalidation
func CreateGame(c *gin.Context) {
	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	game, err := Games.Create(input.Title, input.Genre, input.Platform, input.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	go func() {
		if cache.IsRedisAvailable() {
			cache.InvalidateGames()
			cache.InvalidateStats()
		}
	}()
	updateRecordGauges()

	c.JSON(http.StatusOK, game)
}

func GetGameByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	game, err := Games.Find(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game"})
		return
	}
	c.JSON(http.StatusOK, game)
}

// GetGameReviews lists a game's reviews with Redis caching
func GetGameReviews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := Games.Find(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game"})
		return
	}

	if cache.IsRedisAvailable() {
		var cached []models.Review
		if err := cache.GetReviews(id, &cached); err == nil {
			utils.Log.Debug(fmt.Sprintf("Cache HIT: reviews for game %d", id))
			c.JSON(http.StatusOK, cached)
			return
		}
		utils.Log.Debug(fmt.Sprintf("Cache MISS: reviews for game %d", id))
	}

	reviews, err := Games.Reviews(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetReviews(id, reviews)
	}

	c.JSON(http.StatusOK, reviews)
}

// AppendGameReview creates a review already referencing the game
func AppendGameReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	game, err := Games.Find(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game"})
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	review, err := Games.AppendReview(game, input.Score, input.Comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	go func(gID uint) {
		if cache.IsRedisAvailable() {
			cache.InvalidateReviews(gID)
			cache.InvalidateStats()
			utils.Log.Info(fmt.Sprintf("Reviews cache invalidated for game %d (ASYNC)", gID))
		}
	}(game.ID)
	updateRecordGauges()

	c.JSON(http.StatusOK, review)
}
