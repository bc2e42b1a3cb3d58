package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
	projRepoImp "sprout/pkg/project/repositoryImp"
	"sprout/pkg/project/service"
	storeRepoImp "sprout/pkg/store/repositoryImp"
	taskrepo "sprout/pkg/tasks/repository"
	taskRepoImp "sprout/pkg/tasks/repositoryImp"
)

const uid = "gardener-test"

func newFixture(t *testing.T) (service.ProjectService, taskrepo.TaskRepository) {
	t.Helper()
	store := storeRepoImp.NewMemory()
	tRepo := taskRepoImp.New(store)
	return NewProjectService(projRepoImp.New(store), tRepo), tRepo
}

func TestCreateAndList(t *testing.T) {
	svc, _ := newFixture(t)
	p, err := svc.Create(uid, service.NewProject{Name: "Spring veg", Color: "#4caf50"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	list, err := svc.List(uid)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Spring veg", list[0].Name)
}

func TestDeleteUnassignsReferencingTasks(t *testing.T) {
	svc, tRepo := newFixture(t)
	p, err := svc.Create(uid, service.NewProject{Name: "Spring veg"})
	require.NoError(t, err)

	due := entities.NewFlexTime(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, tRepo.SaveAll(uid, []entities.CustomTask{
		{ID: "a", Activity: "Weed beds", ProjectID: p.ID, DueDate: due},
		{ID: "b", Activity: "Buy netting", ProjectID: p.ID, DueDate: due},
		{ID: "c", Activity: "Service mower", ProjectID: "other", DueDate: due},
	}))

	require.NoError(t, svc.Delete(uid, p.ID))

	list, err := svc.List(uid)
	require.NoError(t, err)
	assert.Empty(t, list)

	tasks, err := tRepo.List(uid)
	require.NoError(t, err)
	require.Len(t, tasks, 3, "tasks are unassigned, never deleted")
	assert.Empty(t, tasks[0].ProjectID)
	assert.Empty(t, tasks[1].ProjectID)
	assert.Equal(t, "other", tasks[2].ProjectID)
}

func TestDeleteMissingProject(t *testing.T) {
	svc, _ := newFixture(t)
	assert.ErrorIs(t, svc.Delete(uid, "nope"), ErrNotFound)
}
