package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SheikhZaeem/Task-Manager/internal/domain"
)

type TaskRepo struct {
	collection *mongo.Collection
}

func NewTaskRepo(db *mongo.Database) *TaskRepo {
	return &TaskRepo{
		collection: db.Collection("Tasks"),
	}
}

func (r *TaskRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return r.find(ctx, bson.M{"userId": ownerID})
}

func (r *TaskRepo) ListByOwnerAndFrequency(ctx context.Context, ownerID, frequency string) ([]domain.Task, error) {
	return r.find(ctx, bson.M{"userId": ownerID, "frequency": frequency})
}

func (r *TaskRepo) find(ctx context.Context, filter bson.M) ([]domain.Task, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var tasks []domain.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (r *TaskRepo) Insert(ctx context.Context, task *domain.Task) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *TaskRepo) Replace(ctx context.Context, id primitive.ObjectID, ownerID string, task *domain.Task) (int64, error) {
	filter := bson.M{"_id": id, "userId": ownerID}
	res, err := r.collection.ReplaceOne(ctx, filter, task)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id primitive.ObjectID, ownerID string) (int64, error) {
	filter := bson.M{"_id": id, "userId": ownerID}
	res, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
