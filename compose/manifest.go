package compose

import (
	"fmt"
	"strings"
)

// renderManifest serializes the topology to docker-compose.yml. The shared
// block renders once as a YAML extension field; extending services merge
// it with `<<:` so the manifest itself carries the inherit-don't-duplicate
// relation, not just the in-memory graph.
func renderManifest(t Topology) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("x-%s: &%s\n", t.Shared.Anchor, t.Shared.Anchor))
	b.WriteString(fmt.Sprintf("  build: %s\n", t.Shared.Build))
	if len(t.Shared.Env) > 0 {
		b.WriteString("  environment:\n")
		for _, e := range t.Shared.Env {
			b.WriteString(fmt.Sprintf("    %s: %s\n", e.Key, e.Value))
		}
	}
	if len(t.Shared.Volumes) > 0 {
		b.WriteString("  volumes:\n")
		for _, v := range t.Shared.Volumes {
			b.WriteString(fmt.Sprintf("    - %s\n", v))
		}
	}

	b.WriteString("\nservices:\n")
	for _, svc := range t.Services {
		b.WriteString(renderService(t.Shared, svc))
	}

	// Aggregate trailer: named volumes referenced by the services above.
	b.WriteString("\nvolumes:\n")
	for _, v := range t.Volumes {
		b.WriteString(fmt.Sprintf("  %s:\n", v))
	}

	return b.String()
}

func renderService(shared SharedBlock, svc Service) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s:\n", svc.Name))

	if svc.Extends {
		b.WriteString(fmt.Sprintf("    <<: *%s\n", shared.Anchor))
	}
	if svc.Image != "" {
		b.WriteString(fmt.Sprintf("    image: %s\n", svc.Image))
	}
	if svc.Command != "" {
		b.WriteString(fmt.Sprintf("    command: %s\n", svc.Command))
	}
	if len(svc.Env) > 0 {
		b.WriteString("    environment:\n")
		for _, e := range svc.Env {
			b.WriteString(fmt.Sprintf("      %s: %s\n", e.Key, e.Value))
		}
	}
	if len(svc.Ports) > 0 {
		b.WriteString("    ports:\n")
		for _, p := range svc.Ports {
			b.WriteString(fmt.Sprintf("      - %q\n", p))
		}
	}
	if len(svc.Volumes) > 0 {
		b.WriteString("    volumes:\n")
		for _, v := range svc.Volumes {
			b.WriteString(fmt.Sprintf("      - %s\n", v))
		}
	}
	if len(svc.DependsOn) > 0 {
		b.WriteString("    depends_on:\n")
		for _, d := range svc.DependsOn {
			b.WriteString(fmt.Sprintf("      - %s\n", d))
		}
	}
	return b.String()
}
