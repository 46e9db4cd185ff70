// Package conlog provides a namespaced logging facade with centrally
// controlled verbosity. Independent modules obtain named loggers from a
// shared facade; one runtime-mutable configuration gates every instance,
// and error-level calls optionally escalate to an external reporter.
//
// Features:
//   - Named logger instances sharing one filter state
//   - Runtime partial reconfiguration, immediately visible to all instances
//   - Ordered levels trace, debug, info, warn, error with rank filtering
//   - Independently gated replicant message category
//   - Best-effort caller-context annotation on every line
//   - Pluggable console-like sink with colorized default
//   - Optional fire-and-forget error-reporting escalation
//   - Thread-safe operations
//
// Lixen Wraith, 2025
package conlog
