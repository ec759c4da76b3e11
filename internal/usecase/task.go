package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SheikhZaeem/Task-Manager/internal/domain"
	"github.com/SheikhZaeem/Task-Manager/internal/repository"
)

// TaskUsecase performs owner-scoped operations on tasks. Every method takes
// the verified caller id from the token, never from client input.
type TaskUsecase struct {
	repo repository.TaskRepository
}

func NewTaskUsecase(repo repository.TaskRepository) *TaskUsecase {
	return &TaskUsecase{repo: repo}
}

func (uc *TaskUsecase) List(ctx context.Context, callerID string) ([]domain.Task, error) {
	return uc.repo.ListByOwner(ctx, callerID)
}

// Create requires a non-empty title, forces the owner to the caller, and
// defaults an unset frequency to Daily. The frequency is not otherwise
// validated on the write path.
func (uc *TaskUsecase) Create(ctx context.Context, callerID string, task *domain.Task) (*domain.Task, error) {
	if task.Title == "" {
		return nil, domain.ErrTitleRequired
	}

	task.UserID = callerID
	if task.Frequency == "" {
		task.Frequency = domain.FrequencyDaily
	}

	id, err := uc.repo.Insert(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	task.ID = id
	return task, nil
}

// Update replaces the whole document matched by id AND owner. The
// replacement's id is forced to the path id and its owner to the caller, so
// the body can neither change a task's identity nor hand it to another user.
// A miss and a foreign-owned task both come back as ErrTaskNotFound.
func (uc *TaskUsecase) Update(ctx context.Context, callerID, id string, replacement *domain.Task) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// an unparseable id cannot match any document
		return domain.ErrTaskNotFound
	}

	replacement.ID = oid
	replacement.UserID = callerID
	matched, err := uc.repo.Replace(ctx, oid, callerID, replacement)
	if err != nil {
		return fmt.Errorf("replace task: %w", err)
	}
	if matched == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete removes the document matched by id AND owner, with the same
// indistinguishable not-found behavior as Update.
func (uc *TaskUsecase) Delete(ctx context.Context, callerID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	deleted, err := uc.repo.Delete(ctx, oid, callerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if deleted == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Report returns the caller's tasks with the given stored frequency. The
// frequency must be exactly Daily, Weekly, or Monthly.
func (uc *TaskUsecase) Report(ctx context.Context, callerID, frequency string) ([]domain.Task, error) {
	if !domain.ValidFrequency(frequency) {
		return nil, domain.ErrInvalidFrequency
	}
	return uc.repo.ListByOwnerAndFrequency(ctx, callerID, frequency)
}
