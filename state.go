package conlog

import "sync"

// state is the filter state shared by every Logger a Facade produces.
// Instances hold it by reference; there is no per-instance copy to refresh
// after a reconfiguration. It lives for the lifetime of its facade and is
// mutated only through apply.
type state struct {
	mu             sync.RWMutex
	consoleEnabled bool
	level          Level
	replicants     bool
}

// newState establishes the filter state from defaults merged with cfg.
func newState(cfg *Config) *state {
	st := &state{
		consoleEnabled: false,
		level:          LevelInfo,
		replicants:     false,
	}
	st.apply(cfg)
	return st
}

// apply merges a partial configuration into the current values. Every
// omitted field is left untouched; a nil or empty config is a no-op.
func (st *state) apply(cfg *Config) {
	if cfg == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if cfg.Console != nil {
		st.consoleEnabled = getConfigValue(st.consoleEnabled, cfg.Console.Enabled)
		st.level = getConfigValue(st.level, cfg.Console.Level)
	}
	st.replicants = getConfigValue(st.replicants, cfg.Replicants)
}

// snapshot returns a consistent read of the three gates for one emission.
func (st *state) snapshot() (consoleEnabled bool, level Level, replicants bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.consoleEnabled, st.level, st.replicants
}
