package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	GameID    uint      `gorm:"index" json:"gameId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewInput - payload for creating a review. GameID may be zero when the
// review is created first and attached to a game later.
type ReviewInput struct {
	Score   int    `json:"score" validate:"gte=0,lte=10"`
	Comment string `json:"comment" validate:"required"`
	GameID  uint   `json:"gameId"`
}
