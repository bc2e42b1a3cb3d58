package repository

// Store is the key-value persistence surface. Collections are serialized
// JSON arrays under a per-user key; every mutation is a whole-value replace.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(uid, key string) (string, bool, error)
	Set(uid, key, value string) error
}
