package compose

import "strings"

// A Fragment is a named, independently testable piece of an artifact,
// gated by a predicate over the config. Fragments render in slice order;
// the order is fixed because later fragments reference names declared by
// earlier ones (base declarations, then feature-gated additions, then
// aggregate trailers like the volumes list).
type Fragment struct {
	Name   string
	When   Predicate
	Render func(*composeContext) string
}

// Predicate gates a fragment on the config's feature flags only.
type Predicate func(*composeContext) bool

// composeContext bundles what fragment renderers may read: the config and
// the already-built topology. Both are read-only by convention.
type composeContext struct {
	cfg      configView
	topology Topology
}

// configView narrows GenerationConfig to what fragments need, keeping
// renderers honest about their inputs.
type configView struct {
	Name        string
	SnakeName   string
	BackendDir  string
	FrontendDir string
	RubyPin     string
	NodePin     string
	HasFrontend bool
	HasSidekiq  bool
}

// always gates a base fragment.
func always(*composeContext) bool { return true }

// whenSidekiq gates background-job fragments.
func whenSidekiq(c *composeContext) bool { return c.cfg.HasSidekiq }

// whenFrontend gates frontend fragments.
func whenFrontend(c *composeContext) bool { return c.cfg.HasFrontend }

// renderFragments concatenates the enabled fragments in declaration order.
func renderFragments(ctx *composeContext, fragments []Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		if f.When(ctx) {
			b.WriteString(f.Render(ctx))
		}
	}
	return b.String()
}
