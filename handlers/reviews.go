package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamereviews/cache"
	"gamereviews/models"
	"gamereviews/store"
	"gamereviews/utils"
)

// CreateReview with cache invalidation
func CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	review, err := Reviews.Create(input.Score, input.Comment, input.GameID)
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
	}(review.GameID)
	updateRecordGauges()

	c.JSON(http.StatusOK, review)
}

// GetReviews lists reviews, optionally filtered with ?gameId=
func GetReviews(c *gin.Context) {
	if gameID := c.Query("gameId"); gameID != "" {
		gID, err := strconv.ParseUint(gameID, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gameId"})
			return
		}

		if cache.IsRedisAvailable() {
			var cached []models.Review
			if err := cache.GetReviews(uint(gID), &cached); err == nil {
				utils.Log.Debug(fmt.Sprintf("Cache HIT: reviews for game %s", gameID))
				c.JSON(http.StatusOK, cached)
				return
			}
			utils.Log.Debug(fmt.Sprintf("Cache MISS: reviews for game %s", gameID))
		}

		reviews, err := Games.Reviews(uint(gID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		if cache.IsRedisAvailable() {
			cache.SetReviews(uint(gID), reviews)
		}
		c.JSON(http.StatusOK, reviews)
		return
	}

	reviews, err := Reviews.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func GetReviewByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	review, err := Reviews.Find(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}
	c.JSON(http.StatusOK, review)
}

// GetReviewGame resolves the review's game reference
func GetReviewGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	review, err := Reviews.Find(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}

	game, err := Reviews.Game(review)
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

// AttachReviewGame creates a new game and points the review at it
func AttachReviewGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	review, err := Reviews.Find(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}

	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	game, err := Reviews.AttachNewGame(review, input.Title, input.Genre, input.Platform, input.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach game"})
		return
	}

	go func(gID uint) {
		if cache.IsRedisAvailable() {
			cache.InvalidateGames()
			cache.InvalidateReviews(gID)
			cache.InvalidateStats()
		}
	}(game.ID)
	updateRecordGauges()

	c.JSON(http.StatusOK, gin.H{"review": review, "game": game})
}
