package main

import (
	"log"

	"gamereviews/db"
	"gamereviews/models"
	"gamereviews/store"
)

func main() {
	db.InitDB()

	migrator := db.DB.Migrator()
	if err := migrator.DropTable(&models.Review{}, &models.Game{}); err != nil {
		log.Fatal("failed to drop tables:", err)
	}
	if err := db.DB.AutoMigrate(&models.Game{}, &models.Review{}); err != nil {
		log.Fatal("failed to migrate:", err)
	}

	games := store.NewGameStore(db.DB)
	reviews := store.NewReviewStore(db.DB)

	catalog := []struct {
		title, genre, platform string
		price                  int
		reviews                []models.ReviewInput
	}{
		{"Mario Kart", "Racing", "Switch", 60, []models.ReviewInput{
			{Score: 8, Comment: "A classic"},
			{Score: 9, Comment: "Blue shells ruin friendships"},
		}},
		{"Celeste", "Platformer", "PC", 20, []models.ReviewInput{
			{Score: 10, Comment: "Tight controls, great soundtrack"},
		}},
		{"Doom", "Shooter", "PC", 40, []models.ReviewInput{
			{Score: 9, Comment: "Rip and tear"},
		}},
		{"Stardew Valley", "Simulation", "Switch", 15, nil},
	}

	for _, entry := range catalog {
		game, err := games.Create(entry.title, entry.genre, entry.platform, entry.price)
		if err != nil {
			log.Fatal("failed to seed game:", err)
		}
		for _, r := range entry.reviews {
			if _, err := reviews.CreateForGame(r.Score, r.Comment, game); err != nil {
				log.Fatal("failed to seed review:", err)
			}
		}
	}

	log.Println("Database seeded")
}
