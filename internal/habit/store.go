package habit

import "context"

// Fixed persistence keys, prefixed with the visitor scope.
const (
	KeyHabits   = "habits"
	KeyLogs     = "habit_logs"
	KeyProgress = "user_progress"
)

// Store is the persistence port for habit state.
// Load returns (nil, nil) when the key does not exist.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// ScopedKey namespaces a persistence key for one visitor.
func ScopedKey(scope, key string) string {
	if scope == "" {
		return key
	}
	return scope + ":" + key
}
