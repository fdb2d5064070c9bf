package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for CLI flag counts.
//
// These gate what a run prints: the default shows results and errors only,
// each -v adds a layer of mechanism.
const (
	VerbosityUser  = 0 // No flags: status lines and errors only
	VerbosityInfo  = 1 // -v: + per-stage progress, external command lines
	VerbosityDebug = 2 // -vv: + fragment decisions, resolved config, timing
	VerbosityTrace = 3 // -vvv: + external tool stdout/stderr passthrough
)

// VerbosityToLevel maps verbosity flag counts (-v, -vv, ...) to zap levels.
//
//	0 (none)  -> WarnLevel  (errors and warnings only)
//	1 (-v)    -> InfoLevel
//	2+ (-vv)  -> DebugLevel (zap has no finer levels; trace behavior is
//	             gated separately via ShouldStreamSubprocess)
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// ShouldStreamSubprocess returns true when external tool output should be
// forwarded to the terminal instead of discarded (-vvv and up).
func ShouldStreamSubprocess(verbosity int) bool {
	return verbosity >= VerbosityTrace
}

// LevelName returns a human-readable name for a verbosity level
func LevelName(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "User"
	case VerbosityInfo:
		return "Info (-v)"
	case VerbosityDebug:
		return "Debug (-vv)"
	default:
		return "Trace (-vvv)"
	}
}
