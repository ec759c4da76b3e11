package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SheikhZaeem/Task-Manager/internal/domain"
)

type fakeTaskRepo struct {
	tasks []domain.Task
}

func (f *fakeTaskRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Task, error) {
	out := []domain.Task{}
	for _, t := range f.tasks {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListByOwnerAndFrequency(_ context.Context, ownerID, frequency string) ([]domain.Task, error) {
	out := []domain.Task{}
	for _, t := range f.tasks {
		if t.UserID == ownerID && t.Frequency == frequency {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Insert(_ context.Context, task *domain.Task) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *task
	stored.ID = id
	f.tasks = append(f.tasks, stored)
	return id, nil
}

func (f *fakeTaskRepo) Replace(_ context.Context, id primitive.ObjectID, ownerID string, task *domain.Task) (int64, error) {
	for i, t := range f.tasks {
		if t.ID == id && t.UserID == ownerID {
			f.tasks[i] = *task
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id primitive.ObjectID, ownerID string) (int64, error) {
	for i, t := range f.tasks {
		if t.ID == id && t.UserID == ownerID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func seedTask(repo *fakeTaskRepo, owner, title, frequency string) primitive.ObjectID {
	id, _ := repo.Insert(context.Background(), &domain.Task{
		Title:     title,
		Frequency: frequency,
		UserID:    owner,
	})
	return id
}

func TestCreateRequiresTitle(t *testing.T) {
	uc := NewTaskUsecase(&fakeTaskRepo{})

	_, err := uc.Create(context.Background(), "alice", &domain.Task{Description: "no title"})
	assert.ErrorIs(t, err, domain.ErrTitleRequired)
}

func TestCreateForcesOwner(t *testing.T) {
	uc := NewTaskUsecase(&fakeTaskRepo{})

	created, err := uc.Create(context.Background(), "alice", &domain.Task{
		Title:  "Buy milk",
		UserID: "mallory",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.UserID)
	assert.False(t, created.ID.IsZero())
}

func TestCreateDefaultsFrequency(t *testing.T) {
	uc := NewTaskUsecase(&fakeTaskRepo{})

	created, err := uc.Create(context.Background(), "alice", &domain.Task{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyDaily, created.Frequency)
}

func TestCreateDoesNotValidateFrequency(t *testing.T) {
	// the enumeration is only checked on the report path
	uc := NewTaskUsecase(&fakeTaskRepo{})

	created, err := uc.Create(context.Background(), "alice", &domain.Task{
		Title:     "Stretch",
		Frequency: "Yearly",
	})
	require.NoError(t, err)
	assert.Equal(t, "Yearly", created.Frequency)
}

func TestUpdateNotFoundIsIndistinguishable(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := NewTaskUsecase(repo)
	id := seedTask(repo, "alice", "Buy milk", domain.FrequencyDaily)

	// foreign-owned id
	foreignErr := uc.Update(context.Background(), "bob", id.Hex(), &domain.Task{Title: "x"})
	// nonexistent id
	missingErr := uc.Update(context.Background(), "bob", primitive.NewObjectID().Hex(), &domain.Task{Title: "x"})
	// unparseable id
	badErr := uc.Update(context.Background(), "bob", "not-hex", &domain.Task{Title: "x"})

	assert.ErrorIs(t, foreignErr, domain.ErrTaskNotFound)
	assert.ErrorIs(t, missingErr, domain.ErrTaskNotFound)
	assert.ErrorIs(t, badErr, domain.ErrTaskNotFound)
}

func TestUpdateForcesIDFromPath(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := NewTaskUsecase(repo)
	id := seedTask(repo, "alice", "Buy milk", domain.FrequencyDaily)

	replacement := &domain.Task{
		ID:     primitive.NewObjectID(), // body tries to change identity
		Title:  "Buy oat milk",
		UserID: "alice",
	}
	require.NoError(t, uc.Update(context.Background(), "alice", id.Hex(), replacement))

	assert.Equal(t, id, repo.tasks[0].ID)
	assert.Equal(t, "Buy oat milk", repo.tasks[0].Title)
}

func TestUpdateForcesOwner(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := NewTaskUsecase(repo)
	id := seedTask(repo, "alice", "Buy milk", domain.FrequencyDaily)

	replacement := &domain.Task{
		Title:  "Buy oat milk",
		UserID: "bob", // body tries to hand the task to another user
	}
	require.NoError(t, uc.Update(context.Background(), "alice", id.Hex(), replacement))

	assert.Equal(t, "alice", repo.tasks[0].UserID)
}

func TestDeleteNotFoundIsIndistinguishable(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := NewTaskUsecase(repo)
	id := seedTask(repo, "alice", "Buy milk", domain.FrequencyDaily)

	assert.ErrorIs(t, uc.Delete(context.Background(), "bob", id.Hex()), domain.ErrTaskNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), "alice", primitive.NewObjectID().Hex()), domain.ErrTaskNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), "alice", "not-hex"), domain.ErrTaskNotFound)

	// the task survived the foreign delete attempt
	require.NoError(t, uc.Delete(context.Background(), "alice", id.Hex()))
}

func TestListReturnsOnlyCallerTasks(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := NewTaskUsecase(repo)
	seedTask(repo, "alice", "Buy milk", domain.FrequencyDaily)
	seedTask(repo, "bob", "Walk dog", domain.FrequencyDaily)

	tasks, err := uc.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
}

func TestReportFiltersByFrequency(t *testing.T) {
	repo := &fakeTaskRepo{}
	uc := NewTaskUsecase(repo)
	seedTask(repo, "alice", "Standup", domain.FrequencyDaily)
	seedTask(repo, "alice", "Review", domain.FrequencyWeekly)
	seedTask(repo, "bob", "Report", domain.FrequencyDaily)

	tasks, err := uc.Report(context.Background(), "alice", domain.FrequencyDaily)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Standup", tasks[0].Title)
}

func TestReportRejectsInvalidFrequency(t *testing.T) {
	uc := NewTaskUsecase(&fakeTaskRepo{})

	for _, freq := range []string{"Biweekly", "daily", "WEEKLY", ""} {
		_, err := uc.Report(context.Background(), "alice", freq)
		assert.ErrorIs(t, err, domain.ErrInvalidFrequency, "frequency %q", freq)
	}
}
