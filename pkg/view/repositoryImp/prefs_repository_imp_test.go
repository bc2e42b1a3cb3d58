package repositoryImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
	storeRepoImp "sprout/pkg/store/repositoryImp"
)

const uid = "gardener-test"

func TestSourcePrefsDefaults(t *testing.T) {
	r := New(storeRepoImp.NewMemory())
	prefs, err := r.SourcePrefs(uid)
	require.NoError(t, err)
	assert.True(t, prefs.ShowCustom)
	assert.True(t, prefs.ShowSystem)
}

func TestSourcePrefsRoundTrip(t *testing.T) {
	r := New(storeRepoImp.NewMemory())
	require.NoError(t, r.SetSourcePrefs(uid, entities.TaskSourcePrefs{ShowCustom: true}))
	prefs, err := r.SourcePrefs(uid)
	require.NoError(t, err)
	assert.True(t, prefs.ShowCustom)
	assert.False(t, prefs.ShowSystem)
}

func TestSourcePrefsBadPayloadFallsBack(t *testing.T) {
	store := storeRepoImp.NewMemory()
	require.NoError(t, store.Set(uid, "taskSourcePrefs", "not json"))
	prefs, err := New(store).SourcePrefs(uid)
	require.NoError(t, err)
	assert.True(t, prefs.ShowCustom)
	assert.True(t, prefs.ShowSystem)
}

func TestHideCompletedSuggestionsDefaultsTrue(t *testing.T) {
	r := New(storeRepoImp.NewMemory())
	hide, err := r.HideCompletedSuggestions(uid)
	require.NoError(t, err)
	assert.True(t, hide)
}

func TestHideCompletedSuggestionsRoundTrip(t *testing.T) {
	r := New(storeRepoImp.NewMemory())
	require.NoError(t, r.SetHideCompletedSuggestions(uid, false))
	hide, err := r.HideCompletedSuggestions(uid)
	require.NoError(t, err)
	assert.False(t, hide)
}
