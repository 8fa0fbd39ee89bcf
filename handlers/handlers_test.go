package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gamereviews/handlers"
	"gamereviews/models"
	"gamereviews/utils"
)

var loggerOnce sync.Once

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	loggerOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		utils.InitLogger()
	})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Game{}, &models.Review{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	handlers.Init(db)

	r := gin.New()
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
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestCreateAndGetGame(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/games", models.GameInput{
		Title: "Mario Kart", Genre: "Racing", Platform: "Switch", Price: 60,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("POST /games status = %d, body %s", w.Code, w.Body.String())
	}
	created := decode[models.Game](t, w)
	if created.ID == 0 {
		t.Fatal("created game has no id")
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/games/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /games/:id status = %d", w.Code)
	}
	got := decode[models.Game](t, w)
	if got.Title != "Mario Kart" || got.Price != 60 {
		t.Errorf("GET /games/:id = %+v, want the created record", got)
	}
}

func TestGetGameNotFound(t *testing.T) {
	r := setupRouter(t)

	if w := doJSON(t, r, http.MethodGet, "/games/9999", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET missing game status = %d, want 404", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/games/notanid", nil); w.Code != http.StatusBadRequest {
		t.Errorf("GET invalid id status = %d, want 400", w.Code)
	}
}

func TestCreateGameValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/games", models.GameInput{Genre: "Racing"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("POST /games without title status = %d, want 400", w.Code)
	}
}

func TestReviewResolvesItsGame(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/games", models.GameInput{
		Title: "Mario Kart", Genre: "Racing", Platform: "Switch", Price: 60,
	})
	game := decode[models.Game](t, w)

	w = doJSON(t, r, http.MethodPost, "/reviews", models.ReviewInput{
		Score: 8, Comment: "A classic", GameID: game.ID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("POST /reviews status = %d, body %s", w.Code, w.Body.String())
	}
	review := decode[models.Review](t, w)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/reviews/%d/game", review.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /reviews/:id/game status = %d", w.Code)
	}
	resolved := decode[models.Game](t, w)
	if resolved.ID != game.ID || resolved.Title != "Mario Kart" {
		t.Errorf("resolved game = %+v, want the Mario Kart record", resolved)
	}
}

func TestReviewGameDangling(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/reviews", models.ReviewInput{
		Score: 2, Comment: "orphaned", GameID: 4242,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("POST /reviews with dangling reference status = %d", w.Code)
	}
	review := decode[models.Review](t, w)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/reviews/%d/game", review.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("GET game of dangling review status = %d, want 404", w.Code)
	}
}

func TestAppendAndListGameReviews(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/games", models.GameInput{Title: "Tetris", Price: 10})
	game := decode[models.Game](t, w)

	for i := 0; i < 2; i++ {
		w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/games/%d/reviews", game.ID), models.ReviewInput{
			Score: 10, Comment: "still holds up",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("POST /games/:id/reviews status = %d, body %s", w.Code, w.Body.String())
		}
		appended := decode[models.Review](t, w)
		if appended.GameID != game.ID {
			t.Errorf("appended review references game %d, want %d", appended.GameID, game.ID)
		}
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/games/%d/reviews", game.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /games/:id/reviews status = %d", w.Code)
	}
	reviews := decode[[]models.Review](t, w)
	if len(reviews) != 2 {
		t.Errorf("reviews count = %d, want 2", len(reviews))
	}
}

func TestAttachReviewGame(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/reviews", models.ReviewInput{
		Score: 7, Comment: "review first, game later",
	})
	review := decode[models.Review](t, w)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/reviews/%d/game", review.ID), models.GameInput{
		Title: "Hades", Genre: "Roguelike", Platform: "PC", Price: 25,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("POST /reviews/:id/game status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/reviews/%d/game", review.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /reviews/:id/game status = %d", w.Code)
	}
	game := decode[models.Game](t, w)
	if game.Title != "Hades" {
		t.Errorf("attached game = %+v, want Hades", game)
	}
}

func TestSearchGames(t *testing.T) {
	r := setupRouter(t)

	for _, title := range []string{"Mario Kart", "Mario Party", "Doom"} {
		doJSON(t, r, http.MethodPost, "/games", models.GameInput{Title: title, Price: 60})
	}

	w := doJSON(t, r, http.MethodGet, "/games?q=Mario", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /games?q= status = %d", w.Code)
	}
	result := decode[struct {
		TotalFound int `json:"total_found"`
	}](t, w)
	if result.TotalFound != 2 {
		t.Errorf("search total_found = %d, want 2", result.TotalFound)
	}
}

func TestGetStats(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/games", models.GameInput{Title: "Portal", Price: 10})
	game := decode[models.Game](t, w)
	doJSON(t, r, http.MethodPost, "/reviews", models.ReviewInput{Score: 8, Comment: "cake", GameID: game.ID})

	w = doJSON(t, r, http.MethodGet, "/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /stats status = %d", w.Code)
	}
	result := decode[struct {
		Statistics struct {
			TotalGames   int64   `json:"total_games"`
			TotalReviews int64   `json:"total_reviews"`
			AverageScore float64 `json:"average_score"`
		} `json:"statistics"`
	}](t, w)
	if result.Statistics.TotalGames != 1 || result.Statistics.TotalReviews != 1 {
		t.Errorf("stats = %+v, want 1 game and 1 review", result.Statistics)
	}
	if result.Statistics.AverageScore != 8 {
		t.Errorf("average_score = %v, want 8", result.Statistics.AverageScore)
	}
}
