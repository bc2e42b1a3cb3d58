package repositoryImp

import (
	"encoding/json"
	"log"
	"strconv"

	"sprout/entities"
	storerepo "sprout/pkg/store/repository"
	"sprout/pkg/view/repository"
)

const (
	sourcePrefsKey   = "taskSourcePrefs"
	hideSuggestedKey = "hideCompletedSuggestions"
)

type prefsRepo struct{ store storerepo.Store }

func New(store storerepo.Store) repository.PrefsRepository { return &prefsRepo{store} }

func (r *prefsRepo) SourcePrefs(uid string) (entities.TaskSourcePrefs, error) {
	def := entities.TaskSourcePrefs{ShowCustom: true, ShowSystem: true}
	raw, ok, err := r.store.Get(uid, sourcePrefsKey)
	if err != nil {
		return def, err
	}
	if !ok || raw == "" {
		return def, nil
	}
	var prefs entities.TaskSourcePrefs
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		log.Printf("[store] bad %s payload for %s: %v", sourcePrefsKey, uid, err)
		return def, nil
	}
	return prefs, nil
}

func (r *prefsRepo) SetSourcePrefs(uid string, prefs entities.TaskSourcePrefs) error {
	b, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return r.store.Set(uid, sourcePrefsKey, string(b))
}

func (r *prefsRepo) HideCompletedSuggestions(uid string) (bool, error) {
	raw, ok, err := r.store.Get(uid, hideSuggestedKey)
	if err != nil {
		return true, err
	}
	if !ok || raw == "" {
		return true, nil // hidden by default
	}
	hide, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[store] bad %s payload for %s: %v", hideSuggestedKey, uid, err)
		return true, nil
	}
	return hide, nil
}

func (r *prefsRepo) SetHideCompletedSuggestions(uid string, hide bool) error {
	return r.store.Set(uid, hideSuggestedKey, strconv.FormatBool(hide))
}
