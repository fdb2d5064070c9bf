// Package compose is the artifact composer: a pure function from a
// resolved GenerationConfig to the ordered set of generated files. The
// orchestration topology is modeled as an explicit service graph with an
// explicit inherits-from relation, resolved at render time into a shared
// YAML block — values shared between the api and worker services are
// defined once and referenced, never copy-pasted.
package compose

import (
	"fmt"

	"github.com/railyard-cli/railyard/config"
)

// Service names as they appear in every generated artifact. The frontend
// proxy upstream and the Makefile targets render from these same
// constants, which is what keeps the artifacts cross-referentially
// consistent.
const (
	ServiceAPI    = "api"
	ServiceWorker = "worker"
	ServiceDB     = "db"
	ServiceRedis  = "redis"
)

// Fixed ports. APIPort is also the upstream port in the frontend proxy
// config; FrontendPort is the origin the CORS patch allows.
const (
	APIPort      = 3000
	FrontendPort = 5173
)

// Named volumes.
const (
	VolumePostgres = "pgdata"
	VolumeRedis    = "redisdata"
)

// RedisURL is the broker address inside the compose network. The Sidekiq
// initializer patch uses the same value as its fallback.
const RedisURL = "redis://" + ServiceRedis + ":6379/0"

// EnvVar is one environment entry. A slice keeps rendering order fixed,
// which map iteration would not.
type EnvVar struct {
	Key   string
	Value string
}

// SharedBlock is the inherits-from target: attributes defined once and
// aliased by every service that extends it.
type SharedBlock struct {
	Anchor  string
	Build   string
	Volumes []string
	Env     []EnvVar
}

// Service is one logical entry in the orchestration topology. Fully
// determined at composition time; never recomputed after.
type Service struct {
	Name      string
	Image     string // image reference; empty when the service extends the shared build
	Extends   bool   // inherit build/volumes/env from the topology's shared block
	Command   string
	Ports     []string
	Volumes   []string
	Env       []EnvVar // own env entries; only for non-extending services
	DependsOn []string // service names that must be available first
}

// Topology is the full orchestration graph for one generation run.
type Topology struct {
	Shared   SharedBlock
	Services []Service // fixed render order
	Volumes  []string  // named volumes, aggregate trailer
}

// BuildTopology derives the service graph from the config. Pure: no
// randomness, no timestamps, no environment sampling.
func BuildTopology(cfg *config.GenerationConfig) Topology {
	backendEnv := []EnvVar{
		{"RAILS_ENV", "development"},
		{"DATABASE_HOST", ServiceDB},
		{"DATABASE_USER", "postgres"},
		{"DATABASE_PASSWORD", "postgres"},
	}
	if cfg.Sidekiq {
		backendEnv = append(backendEnv, EnvVar{"REDIS_URL", RedisURL})
	}

	shared := SharedBlock{
		Anchor:  "backend",
		Build:   "./" + cfg.BackendDir,
		Volumes: []string{"./" + cfg.BackendDir + ":/app"},
		Env:     backendEnv,
	}

	apiDeps := []string{ServiceDB}
	if cfg.Sidekiq {
		apiDeps = append(apiDeps, ServiceRedis)
	}

	services := []Service{
		{
			Name:      ServiceAPI,
			Extends:   true,
			Command:   fmt.Sprintf("bin/rails server -b 0.0.0.0 -p %d", APIPort),
			Ports:     []string{fmt.Sprintf("%d:%d", APIPort, APIPort)},
			DependsOn: apiDeps,
		},
	}

	if cfg.Sidekiq {
		services = append(services, Service{
			Name:      ServiceWorker,
			Extends:   true,
			Command:   "bundle exec sidekiq",
			DependsOn: []string{ServiceDB, ServiceRedis},
		})
	}

	services = append(services, Service{
		Name:  ServiceDB,
		Image: "postgres:" + cfg.Pins.Postgres,
		Env: []EnvVar{
			{"POSTGRES_USER", "postgres"},
			{"POSTGRES_PASSWORD", "postgres"},
		},
		Volumes: []string{VolumePostgres + ":/var/lib/postgresql/data"},
	})

	volumes := []string{VolumePostgres}
	if cfg.Sidekiq {
		services = append(services, Service{
			Name:    ServiceRedis,
			Image:   "redis:" + cfg.Pins.Redis,
			Volumes: []string{VolumeRedis + ":/data"},
		})
		volumes = append(volumes, VolumeRedis)
	}

	return Topology{Shared: shared, Services: services, Volumes: volumes}
}
