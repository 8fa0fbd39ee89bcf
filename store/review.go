package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gamereviews/models"
)

type ReviewStore struct {
	db    *gorm.DB
	games *GameStore
}

func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db, games: NewGameStore(db)}
}

// Create persists a new review referencing the given game id. The reference
// is not checked here: a review may be created before its game exists, or
// with a zero id and attached later. Resolution fails in Game instead.
func (s *ReviewStore) Create(score int, comment string, gameID uint) (*models.Review, error) {
	review := models.Review{Score: score, Comment: comment, GameID: gameID}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &review, nil
}

// CreateForGame is Create taking the full game record; only its id is stored.
func (s *ReviewStore) CreateForGame(score int, comment string, game *models.Game) (*models.Review, error) {
	if game == nil {
		return nil, fmt.Errorf("store: nil game")
	}
	return s.Create(score, comment, game.ID)
}

func (s *ReviewStore) Find(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find review %d: %w", id, err)
	}
	return &review, nil
}

func (s *ReviewStore) All() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Order("id").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Game is the forward accessor: it resolves the review's stored game id.
// Returns ErrNotFound when the reference is unset or names no existing game.
func (s *ReviewStore) Game(review *models.Review) (*models.Game, error) {
	if review.GameID == 0 {
		return nil, ErrNotFound
	}
	return s.games.Find(review.GameID)
}

// AttachNewGame creates a game and points the review at it in one step.
func (s *ReviewStore) AttachNewGame(review *models.Review, title, genre, platform string, price int) (*models.Game, error) {
	var game *models.Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		game, txErr = NewGameStore(tx).Create(title, genre, platform, price)
		if txErr != nil {
			return txErr
		}
		return tx.Model(review).Update(gameReviews.ForeignKey, game.ID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("attach new game to review %d: %w", review.ID, err)
	}
	review.GameID = game.ID
	return game, nil
}

func (s *ReviewStore) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.Review{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}

// AverageScore returns the mean score across all reviews, 0 when there are
// none.
func (s *ReviewStore) AverageScore() (float64, error) {
	var avg *float64
	err := s.db.Model(&models.Review{}).Select("AVG(score)").Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("average score: %w", err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
