package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
	gardenrepo "sprout/pkg/garden/repository"
	gardenRepoImp "sprout/pkg/garden/repositoryImp"
	"sprout/pkg/garden/service"
	"sprout/pkg/schedule"
	storerepo "sprout/pkg/store/repository"
	storeRepoImp "sprout/pkg/store/repositoryImp"
	"sprout/pkg/timeline"
)

const uid = "gardener-test"

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

type captureNotifier struct{ subjects []string }

func (n *captureNotifier) Notify(subject, detail string) { n.subjects = append(n.subjects, subject) }

func newFixture(t *testing.T) (service.GardenService, gardenrepo.GardenRepository, storerepo.Store, *captureNotifier) {
	t.Helper()
	store := storeRepoImp.NewMemory()
	repo := gardenRepoImp.New(store)
	gen := schedule.NewGenerator(timeline.NewRegistry())
	n := &captureNotifier{}
	return NewGardenService(repo, gen, n), repo, store, n
}

func addTomatoes(t *testing.T, svc service.GardenService) *entities.GardenPlant {
	t.Helper()
	p, err := svc.Add(uid, service.NewPlant{
		Name:        "Tomatoes",
		DatePlanted: day(2024, 3, 1),
		GrowthForm:  entities.GrowthFormSeed,
		Climate:     entities.ClimateTemperate,
		Location:    "back bed",
	})
	require.NoError(t, err)
	return p
}

func TestAddDerivesScheduleAndPersists(t *testing.T) {
	svc, repo, _, _ := newFixture(t)
	p := addTomatoes(t, svc)

	assert.True(t, p.EstimatedHarvestDate.Time.Equal(day(2024, 5, 21)))
	assert.NotEmpty(t, p.Schedule)

	stored, err := repo.List(uid)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, p.ID, stored[0].ID)
	assert.Equal(t, "back bed", stored[0].Location)
}

func TestUpdateDatePlantedRegeneratesSchedule(t *testing.T) {
	svc, _, _, _ := newFixture(t)
	p := addTomatoes(t, svc)

	_, err := svc.ToggleScheduleTask(uid, p.ID, 0)
	require.NoError(t, err)

	dp := day(2024, 3, 2)
	updated, err := svc.Update(uid, p.ID, service.PlantPatch{DatePlanted: &dp})
	require.NoError(t, err)

	assert.True(t, updated.EstimatedHarvestDate.Time.Equal(day(2024, 5, 22)))
	for _, st := range updated.Schedule {
		assert.False(t, st.Completed, "regeneration replaces completion state")
	}
}

func TestUpdateMetadataKeepsSchedule(t *testing.T) {
	svc, _, _, _ := newFixture(t)
	p := addTomatoes(t, svc)

	loc := "greenhouse"
	updated, err := svc.Update(uid, p.ID, service.PlantPatch{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, "greenhouse", updated.Location)
	assert.Equal(t, p.Schedule, updated.Schedule)
}

func TestSweepHarvested(t *testing.T) {
	svc, repo, _, notifier := newFixture(t)
	addTomatoes(t, svc)

	n, err := svc.SweepHarvested(uid, day(2024, 5, 1))
	require.NoError(t, err)
	assert.Zero(t, n, "harvest date not yet reached")

	n, err = svc.SweepHarvested(uid, day(2024, 5, 21))
	require.NoError(t, err)
	assert.Equal(t, 1, n, "the harvest date itself counts")
	assert.Equal(t, []string{"Harvest time"}, notifier.subjects)

	stored, err := repo.List(uid)
	require.NoError(t, err)
	require.True(t, stored[0].IsHarvested)
	require.NotNil(t, stored[0].HarvestedDate)

	n, err = svc.SweepHarvested(uid, day(2024, 6, 1))
	require.NoError(t, err)
	assert.Zero(t, n, "already harvested plants are left alone")
}

func TestReplantCreatesFreshPlanting(t *testing.T) {
	svc, repo, _, _ := newFixture(t)
	p := addTomatoes(t, svc)

	_, err := svc.SweepHarvested(uid, day(2024, 6, 1))
	require.NoError(t, err)

	fresh, err := svc.Replant(uid, p.ID, day(2024, 9, 1))
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, fresh.ID)
	assert.Equal(t, "Tomatoes", fresh.Name)
	assert.Equal(t, "back bed", fresh.Location)
	assert.False(t, fresh.IsHarvested)
	assert.True(t, fresh.EstimatedHarvestDate.Time.Equal(day(2024, 11, 21)))

	stored, err := repo.List(uid)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.True(t, stored[0].IsHarvested, "the old planting is never resurrected")
}

func TestToggleScheduleTaskBounds(t *testing.T) {
	svc, _, _, _ := newFixture(t)
	p := addTomatoes(t, svc)

	_, err := svc.ToggleScheduleTask(uid, p.ID, len(p.Schedule))
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.ToggleScheduleTask(uid, p.ID, -1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.ToggleScheduleTask(uid, "gone", 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemove(t *testing.T) {
	svc, repo, _, _ := newFixture(t)
	p := addTomatoes(t, svc)

	require.NoError(t, svc.Remove(uid, p.ID))
	stored, err := repo.List(uid)
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.ErrorIs(t, svc.Remove(uid, p.ID), ErrNotFound)
}

func TestMalformedStoredPayloadReadsAsEmpty(t *testing.T) {
	svc, _, store, _ := newFixture(t)
	require.NoError(t, store.Set(uid, "gardenPlants", "{definitely not json"))

	plants, err := svc.List(uid)
	require.NoError(t, err)
	assert.Empty(t, plants)

	// The collection is usable again after the next write.
	addTomatoes(t, svc)
	plants, err = svc.List(uid)
	require.NoError(t, err)
	assert.Len(t, plants, 1)
}
