package repository

import "sprout/entities"

// PrefsRepository persists the view preferences. Both reads fall back to
// their defaults (all sources shown; completed suggestions hidden) when
// nothing is stored or the stored value is unreadable.
type PrefsRepository interface {
	SourcePrefs(uid string) (entities.TaskSourcePrefs, error)
	SetSourcePrefs(uid string, prefs entities.TaskSourcePrefs) error
	HideCompletedSuggestions(uid string) (bool, error)
	SetHideCompletedSuggestions(uid string, hide bool) error
}
