package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gamereviews/monitoring"
	"gamereviews/store"
)

var (
	Games   *store.GameStore
	Reviews *store.ReviewStore
)

// Init wires the handlers to the database.
func Init(db *gorm.DB) {
	Games = store.NewGameStore(db)
	Reviews = store.NewReviewStore(db)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// updateRecordGauges refreshes the record-count metrics after a write.
func updateRecordGauges() {
	if n, err := Games.Count(); err == nil {
		monitoring.TotalGames.Set(float64(n))
	}
	if n, err := Reviews.Count(); err == nil {
		monitoring.TotalReviews.Set(float64(n))
	}
}
