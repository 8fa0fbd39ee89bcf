package models

import "time"

type Game struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Genre     string    `json:"genre"`
	Platform  string    `json:"platform"`
	Price     int       `gorm:"not null" json:"price" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Reviews   []Review  `gorm:"foreignKey:GameID" json:"reviews,omitempty"`
}

// GameInput - payload for creating a game
type GameInput struct {
	Title    string `json:"title" validate:"required"`
	Genre    string `json:"genre"`
	Platform string `json:"platform"`
	Price    int    `json:"price" validate:"gte=0"`
}
