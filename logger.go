package conlog

// Facade owns one shared filter state and hands out named Logger instances
// that consult it. Facades created by separate New calls are fully
// independent: separate state, sink and reporter.
type Facade struct {
	state    *state
	sink     Sink
	reporter Reporter
	caller   CallerFunc
}

// Option modifies facade collaborators during construction.
type Option func(*Facade)

// WithSink tells the facade to forward emissions to the given sink instead
// of the default console sink.
func WithSink(sink Sink) Option {
	return func(f *Facade) { f.sink = sink }
}

// WithReporter supplies the error-reporting capability consulted by Error
// calls. Without it, escalation is silently skipped.
func WithReporter(r Reporter) Option {
	return func(f *Facade) { f.reporter = r }
}

// WithCallerFunc replaces the default caller-context provider.
func WithCallerFunc(fn CallerFunc) Option {
	return func(f *Facade) { f.caller = fn }
}

// New establishes the shared filter state from defaults merged with cfg and
// returns the facade whose Logger method constructs named instances. A nil
// cfg starts from defaults: console disabled, level info, replicants off.
func New(cfg *Config, opts ...Option) *Facade {
	f := &Facade{
		state:  newState(cfg),
		sink:   NewConsoleSink(),
		caller: callerContext,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Logger returns a logger emitting under the given name. Names are not
// required to be unique; every instance reads the facade's shared state.
func (f *Facade) Logger(name string) *Logger {
	return &Logger{name: name, fa: f}
}

// Reconfigure applies a partial update to the shared filter state. Omitted
// fields keep their current values. The change is visible to every existing
// and future Logger on its next call; there is no per-instance cache to
// invalidate. Safe to call at any time, any number of times; a nil or empty
// config is a no-op.
func (f *Facade) Reconfigure(cfg *Config) {
	f.state.apply(cfg)
}

// Logger is a named handle on the facade. The name is fixed at construction;
// filtering always reflects the facade's current state, evaluated on every
// call and never cached.
type Logger struct {
	name string
	fa   *Facade
}

// channel selects the sink operation for an emission.
type channel int

const (
	chInfo channel = iota
	chWarn
	chError
)

// Trace logs at trace level. The message is dropped unless console output
// is enabled and the threshold admits trace.
func (l *Logger) Trace(values ...any) {
	l.emit(chInfo, l.levelPass(LevelTrace), values)
}

// Debug logs at debug level. Debug shares the sink's info channel with
// trace; the two differ only in filtering rank.
func (l *Logger) Debug(values ...any) {
	l.emit(chInfo, l.levelPass(LevelDebug), values)
}

// Info logs at info level on the sink's info channel.
func (l *Logger) Info(values ...any) {
	l.emit(chInfo, l.levelPass(LevelInfo), values)
}

// Warn logs at warn level on the sink's warn channel.
func (l *Logger) Warn(values ...any) {
	l.emit(chWarn, l.levelPass(LevelWarn), values)
}

// Error logs at error level on the sink's error channel and, when a
// reporter is present, escalates the call to it. Escalation rides the
// emission path: a call suppressed by the console gate or the threshold is
// not reported either.
func (l *Logger) Error(values ...any) {
	if !l.emit(chError, l.levelPass(LevelError), values) {
		return
	}
	l.fa.escalate(l.prefix(), values)
}

// Replicants logs the replicant message category. Its gate is console
// enablement plus the replicants flag; the level threshold is never
// consulted. Output is identical to Info, with no escalation.
func (l *Logger) Replicants(values ...any) {
	l.emit(chInfo, l.replicantsPass(), values)
}

// levelPass evaluates the console gate and the threshold for a call at lv.
func (l *Logger) levelPass(lv Level) bool {
	enabled, threshold, _ := l.fa.state.snapshot()
	return enabled && lv.rank() >= threshold.rank()
}

// replicantsPass evaluates the console gate and the replicants flag.
func (l *Logger) replicantsPass() bool {
	enabled, _, replicants := l.fa.state.snapshot()
	return enabled && replicants
}

// prefix is computed per call so a sequence always reflects the current
// instance name.
func (l *Logger) prefix() string {
	return "[" + l.name + "]"
}

// emit builds the prefix + values + caller-context sequence and forwards it
// on the mapped sink channel when the gate passed. It reports whether the
// sink was invoked. The caller-context provider runs at a fixed frame depth
// below the public logging methods; emit must stay their direct callee.
func (l *Logger) emit(ch channel, pass bool, values []any) bool {
	if !pass {
		return false
	}

	seq := make([]any, 0, len(values)+2)
	seq = append(seq, l.prefix())
	seq = append(seq, values...)
	seq = append(seq, l.fa.caller())

	switch ch {
	case chWarn:
		l.fa.sink.Warn(seq...)
	case chError:
		l.fa.sink.Error(seq...)
	default:
		l.fa.sink.Info(seq...)
	}
	return true
}
