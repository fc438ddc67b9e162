package driven

// ConfigStore persists client settings as dotted keys (for example
// "api.base_url") and converts stored values to the requested type.
type ConfigStore interface {
	// Get returns the raw value for key and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns the value for key, or "" when the key is unset
	// or not a string.
	GetString(key string) string

	// GetInt returns the value for key, or 0 when the key is unset or
	// not an integer.
	GetInt(key string) int

	// GetFloat returns the value for key, or 0 when the key is unset or
	// not numeric.
	GetFloat(key string) float64

	// GetBool returns the value for key, or false when the key is unset
	// or not a boolean.
	GetBool(key string) bool

	// Set stores value under key and persists the change immediately.
	Set(key string, value any) error

	// Save writes the current settings to the backing store.
	Save() error

	// Load replaces the in-memory settings with the stored ones.
	Load() error

	// Path reports where the settings are stored.
	Path() string
}
