package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"whatshouldweeat/internal/model"
)

// QuestionRepo stores the question bank. The server reads the pool once
// at startup; the pool never changes for the lifetime of the process.
type QuestionRepo interface {
	GetAll(ctx context.Context) ([]model.Question, error)
	ReplaceAll(ctx context.Context, questions []model.Question) error
}

type questionRepo struct {
	collection *mongo.Collection
}

func NewQuestionRepo(client *mongo.Client) QuestionRepo {
	db := client.Database("whatshouldweeat")
	return &questionRepo{
		collection: db.Collection("questions"),
	}
}

func (r *questionRepo) GetAll(ctx context.Context) ([]model.Question, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"priority": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *questionRepo) ReplaceAll(ctx context.Context, questions []model.Question) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	docs := make([]interface{}, len(questions))
	for i, q := range questions {
		docs[i] = q
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
