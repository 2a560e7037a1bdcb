package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"whatshouldweeat/internal/quiz"
	"whatshouldweeat/internal/repository"
)

// Seeds the builtin question bank into MongoDB so the pool can be
// edited without a rebuild.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	pool := quiz.DefaultBank()
	if err := quiz.ValidateVocabulary(pool); err != nil {
		log.Fatalf("Question bank vocabulary is inconsistent: %v", err)
	}

	repo := repository.NewQuestionRepo(client)
	if err := repo.ReplaceAll(ctx, pool); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}

	fmt.Printf("Seeded %d questions\n", len(pool))
}
