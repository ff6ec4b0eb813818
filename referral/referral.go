// Package referral captures the attribution token a visitor arrives with
// and keeps it across visits, so a registration submitted days later still
// credits the referrer.
package referral

const (
	// Param is the query parameter carrying the attribution token.
	Param = "ref"

	// StorageKey is the fixed key the token is persisted under.
	StorageKey = "referrer"
)

// Store is a small durable key-value store scoped to one visitor. It is
// injected rather than ambient so tests can substitute MemoryStore for the
// cookie-backed implementation.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Capture resolves the active referral token for one page view. A token in
// the query overwrites whatever is stored; otherwise the stored value is
// reused unchanged; otherwise the token is the empty string. No validation,
// no network.
func Capture(queryValue string, store Store) string {
	if queryValue != "" {
		store.Set(StorageKey, queryValue)
		return queryValue
	}
	if v, ok := store.Get(StorageKey); ok {
		return v
	}
	return ""
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.values[key] = value
}
