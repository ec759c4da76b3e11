package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SheikhZaeem/Task-Manager/internal/domain"
)

// UserRepository is the persistence surface the identity usecase depends on.
type UserRepository interface {
	// FindByUsername returns (nil, nil) when no user has the username.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
}

// TaskRepository is the persistence surface the task usecase depends on.
// Replace and Delete report how many documents the combined id+owner filter
// matched; zero means the id does not exist or belongs to another user.
type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	ListByOwnerAndFrequency(ctx context.Context, ownerID, frequency string) ([]domain.Task, error)
	Insert(ctx context.Context, task *domain.Task) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, ownerID string, task *domain.Task) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID, ownerID string) (int64, error)
}
