package conlog

// Config is a partial facade configuration. All fields can be supplied via
// JSON or TOML configuration files. A nil field leaves the corresponding
// current value unchanged, which gives Reconfigure its field-by-field
// update semantics.
type Config struct {
	Console    *ConsoleConfig `json:"console" toml:"console"`       // Console gate and minimum level
	Replicants *bool          `json:"replicants" toml:"replicants"` // Replicant category gate, orthogonal to the level
}

// ConsoleConfig controls whether any output reaches the sink and the minimum
// level that passes the filter.
type ConsoleConfig struct {
	Enabled *bool  `json:"enabled" toml:"enabled"` // Default: false
	Level   *Level `json:"level" toml:"level"`     // Default: info
}

// Ptr returns a pointer to v, for building partial Config literals.
func Ptr[T any](v T) *T {
	return &v
}

// getConfigValue returns cfgVal's value when set, defaultVal otherwise.
// Pointer fields distinguish an absent field from an explicit zero value,
// which plain zero-value merging cannot.
func getConfigValue[T any](defaultVal T, cfgVal *T) T {
	if cfgVal == nil {
		return defaultVal
	}
	return *cfgVal
}
