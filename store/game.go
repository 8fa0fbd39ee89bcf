package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gamereviews/models"
)

type GameStore struct {
	db *gorm.DB
}

func NewGameStore(db *gorm.DB) *GameStore {
	return &GameStore{db: db}
}

// Create persists a new game and returns it with its generated id.
func (s *GameStore) Create(title, genre, platform string, price int) (*models.Game, error) {
	if price < 0 {
		return nil, fmt.Errorf("store: price must be non-negative, got %d", price)
	}
	game := models.Game{Title: title, Genre: genre, Platform: platform, Price: price}
	if err := s.db.Create(&game).Error; err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return &game, nil
}

func (s *GameStore) Find(id uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find game %d: %w", id, err)
	}
	return &game, nil
}

func (s *GameStore) All() ([]models.Game, error) {
	var games []models.Game
	if err := s.db.Order("id").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// Search matches the query against title and genre.
func (s *GameStore) Search(query string) ([]models.Game, error) {
	pattern := "%" + query + "%"
	var games []models.Game
	err := s.db.Where("title LIKE ? OR genre LIKE ?", pattern, pattern).
		Order("id").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("search games %q: %w", query, err)
	}
	return games, nil
}

// Reviews is the reverse accessor: all reviews referencing the given game,
// in insertion order. A game with no reviews yields an empty slice.
func (s *GameStore) Reviews(gameID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where(gameReviews.ForeignKey+" = ?", gameID).
		Order(gameReviews.PrimaryKey).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("reviews for game %d: %w", gameID, err)
	}
	return reviews, nil
}

// AppendReview creates a review pre-populated with the game's id, the
// append operation on the reverse accessor.
func (s *GameStore) AppendReview(game *models.Game, score int, comment string) (*models.Review, error) {
	review := models.Review{Score: score, Comment: comment, GameID: game.ID}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("append review to game %d: %w", game.ID, err)
	}
	return &review, nil
}

func (s *GameStore) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.Game{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return n, nil
}
