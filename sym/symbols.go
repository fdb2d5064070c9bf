// Package sym defines canonical glyphs for Railyard pipeline stages.
// These symbols are stable across CLI output and documentation; each
// generation stage logs under its own glyph so a run reads as a timeline.
package sym

// Pipeline stage glyphs, in run order.
const (
	Config  = "≡" // config — argument resolution and version pins
	Probe   = "⌖" // probe — host platform and external tool checks
	Compose = "⧉" // compose — artifact composition and tree writing
	Run     = "⚙" // run — external generator invocations
	Patch   = "✎" // patch — post-generation rewrites
	Git     = "⎇" // git — repository finalization
)

// StageNames maps each glyph to its stage name for display.
var StageNames = map[string]string{
	Config:  "config",
	Probe:   "probe",
	Compose: "compose",
	Run:     "run",
	Patch:   "patch",
	Git:     "git",
}
