package logger

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings.
const (
	// Pipeline
	FieldStage    = "stage"    // pipeline stage glyph (≡, ⌖, ⧉, ⚙, ✎, ⎇)
	FieldStep     = "step"     // named step within a stage (e.g., "database.yml")
	FieldArtifact = "artifact" // generated artifact path

	// Project
	FieldProject = "project"
	FieldService = "service"

	// External tools
	FieldCommand = "command"
	FieldImage   = "image"
	FieldExit    = "exit_code"

	// Files and paths
	FieldPath = "path"
	FieldDir  = "dir"

	// Timing and errors
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)
