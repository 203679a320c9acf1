package driven

// ConfigStore holds the settings behind `aaltjes config`. Keys are dotted
// paths such as "watch.per_minute"; the typed getters return the zero
// value for a missing key or a value of another type.
type ConfigStore interface {
	// Get returns the raw value and whether key is set.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool

	// Set stores value under key. File-backed stores write through.
	Set(key string, value any) error

	// Path is where the settings live.
	Path() string
}
