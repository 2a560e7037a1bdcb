package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"whatshouldweeat/internal/model"
)

// SessionRepo persists completed quiz runs for usage analytics
type SessionRepo interface {
	Create(ctx context.Context, record *model.SessionRecord) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.SessionRecord, error)
	ListRecent(ctx context.Context, limit int64) ([]*model.SessionRecord, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type sessionRepo struct {
	collection *mongo.Collection
}

func NewSessionRepo(client *mongo.Client) SessionRepo {
	db := client.Database("whatshouldweeat")
	return &sessionRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *sessionRepo) Create(ctx context.Context, record *model.SessionRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *sessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.SessionRecord, error) {
	var record model.SessionRecord
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *sessionRepo) ListRecent(ctx context.Context, limit int64) ([]*model.SessionRecord, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.SessionRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *sessionRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
}
