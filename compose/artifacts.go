package compose

import "fmt"

// Fragment lists per artifact. Precedence within each list is fixed:
// base first, then background-jobs, then frontend, then trailers.

var makefileFragments = []Fragment{
	{
		Name: "base targets",
		When: always,
		Render: func(c *composeContext) string {
			return fmt.Sprintf(`.PHONY: up down logs ps console migrate setup

up:
	docker compose up --build

down:
	docker compose down

logs:
	docker compose logs -f %[1]s

ps:
	docker compose ps

console:
	docker compose exec %[1]s bin/rails console

migrate:
	docker compose exec %[1]s bin/rails db:migrate

setup:
	docker compose run --rm %[1]s bin/rails db:prepare
`, ServiceAPI)
		},
	},
	{
		Name: "sidekiq targets",
		When: whenSidekiq,
		Render: func(c *composeContext) string {
			return fmt.Sprintf(`
.PHONY: worker-logs

worker-logs:
	docker compose logs -f %s
`, ServiceWorker)
		},
	},
	{
		Name: "frontend targets",
		When: whenFrontend,
		Render: func(c *composeContext) string {
			// The dev server joins the compose network so its proxy can
			// resolve the api service by name.
			return fmt.Sprintf(`
.PHONY: frontend frontend-install

frontend-install:
	docker run --rm -v $(PWD)/%[1]s:/app -w /app node:%[2]s npm install

frontend:
	docker run --rm -it -v $(PWD)/%[1]s:/app -w /app -p %[3]d:%[3]d --network %[4]s_default node:%[2]s npm run dev -- --host
`, c.cfg.FrontendDir, c.cfg.NodePin, FrontendPort, c.cfg.Name)
		},
	},
}

var readmeFragments = []Fragment{
	{
		Name: "header and quickstart",
		When: always,
		Render: func(c *composeContext) string {
			return fmt.Sprintf(`# %[1]s

Generated by railyard. A Rails API backed by PostgreSQL, orchestrated with
Docker Compose.

## Quickstart

    make up        # build and start everything
    make setup     # create and migrate the databases
    make console   # rails console inside the %[2]s container

The API listens on http://localhost:%[3]d.
`, c.cfg.Name, ServiceAPI, APIPort)
		},
	},
	{
		Name: "services table",
		When: always,
		Render: func(c *composeContext) string {
			out := "\n## Services\n\n| Service | Role |\n|---|---|\n"
			for _, svc := range c.topology.Services {
				out += fmt.Sprintf("| %s | %s |\n", svc.Name, serviceRole(svc.Name))
			}
			return out
		},
	},
	{
		Name: "background jobs",
		When: whenSidekiq,
		Render: func(c *composeContext) string {
			return fmt.Sprintf(`
## Background jobs

Sidekiq runs in the %[1]s service, reading from %[2]s. Its monitoring UI is
mounted at http://localhost:%[3]d/sidekiq. Tail it with `+"`make worker-logs`"+`.
`, ServiceWorker, ServiceRedis, APIPort)
		},
	},
	{
		Name: "frontend",
		When: whenFrontend,
		Render: func(c *composeContext) string {
			return fmt.Sprintf(`
## Frontend

A Vite React app lives in %[1]s/. Start the dev server with `+"`make frontend`"+`;
it serves on http://localhost:%[2]d and proxies /api to the %[3]s service.
`, c.cfg.FrontendDir, FrontendPort, ServiceAPI)
		},
	},
}

var gitignoreFragments = []Fragment{
	{
		Name: "base ignores",
		When: always,
		Render: func(c *composeContext) string {
			return `.env
*.log
tmp/
.DS_Store
`
		},
	},
	{
		Name: "frontend ignores",
		When: whenFrontend,
		Render: func(c *composeContext) string {
			return fmt.Sprintf(`%[1]s/node_modules/
%[1]s/dist/
`, c.cfg.FrontendDir)
		},
	},
}

var backendDockerfileFragments = []Fragment{
	{
		Name: "ruby base image",
		When: always,
		Render: func(c *composeContext) string {
			return fmt.Sprintf(`FROM ruby:%s

WORKDIR /app

RUN apt-get update -qq \
    && apt-get install -y --no-install-recommends build-essential libpq-dev \
    && rm -rf /var/lib/apt/lists/*

COPY Gemfile* ./
RUN bundle install

COPY . .

EXPOSE %d
CMD ["bin/rails", "server", "-b", "0.0.0.0", "-p", "%d"]
`, c.cfg.RubyPin, APIPort, APIPort)
		},
	},
}

// serviceRole maps a service name to its README description.
func serviceRole(name string) string {
	switch name {
	case ServiceAPI:
		return "Rails API"
	case ServiceWorker:
		return "Sidekiq worker"
	case ServiceDB:
		return "PostgreSQL"
	case ServiceRedis:
		return "Redis broker"
	default:
		return name
	}
}
