package patch

import (
	"fmt"

	"github.com/railyard-cli/railyard/compose"
)

// applicationClassAnchor is the line-anchored insertion point for the
// queue adapter. The Rails generator owns this file's shape; the anchor
// must match exactly once or the run aborts.
const applicationClassAnchor = "class Application < Rails::Application"

// patchSidekiq wires the generated app to the job processor: gem
// declaration, broker initializer, worker configuration, queue adapter,
// routes with the monitoring UI, and one observable example job.
func (p *Patcher) patchSidekiq() error {
	err := p.edit("Gemfile", func(content string) (string, error) {
		return AppendLine(content, `gem "sidekiq"`), nil
	})
	if err != nil {
		return err
	}

	if err := p.create("config/initializers/sidekiq.rb", sidekiqInitializer()); err != nil {
		return err
	}
	if err := p.create("config/sidekiq.yml", sidekiqConfig()); err != nil {
		return err
	}

	err = p.edit("config/application.rb", func(content string) (string, error) {
		return InsertAfter(content, applicationClassAnchor,
			"    config.active_job.queue_adapter = :sidekiq")
	})
	if err != nil {
		return err
	}

	if err := p.rewrite("config/routes.rb", sidekiqRoutes()); err != nil {
		return err
	}
	return p.create("app/jobs/example_job.rb", exampleJob())
}

func sidekiqInitializer() string {
	return fmt.Sprintf(`redis_url = ENV.fetch("REDIS_URL") { "%s" }

Sidekiq.configure_server do |config|
  config.redis = { url: redis_url }
end

Sidekiq.configure_client do |config|
  config.redis = { url: redis_url }
end
`, compose.RedisURL)
}

func sidekiqConfig() string {
	return `:concurrency: 5
:queues:
  - default
  - mailers
`
}

func sidekiqRoutes() string {
	return `require "sidekiq/web"

Rails.application.routes.draw do
  mount Sidekiq::Web => "/sidekiq"

  get "up" => "rails/health#show", as: :rails_health_check
end
`
}

// exampleJob is for smoke-testing the worker wiring only: it sleeps, then
// leaves a timestamped file in the temp directory as an observable side
// effect.
func exampleJob() string {
	return `class ExampleJob < ApplicationJob
  queue_as :default

  def perform
    sleep 5
    stamp = Time.now.utc.iso8601
    File.write(File.join(Dir.tmpdir, "example_job_#{stamp}.txt"), "ran at #{stamp}\n")
  end
end
`
}
