package patch

import (
	"fmt"

	"github.com/railyard-cli/railyard/compose"
)

// Gemfile anchors. Rails ships rack-cors commented out in API mode; if a
// future major drops the comment, the declaration is inserted after the
// rails gem instead.
const (
	commentedCORSGem = `# gem "rack-cors"`
	activeCORSGem    = `gem "rack-cors"`
	railsGemAnchor   = `gem "rails"`
)

// patchCORS activates the rack-cors dependency and replaces the
// cross-origin middleware config wholesale, allowing the frontend's dev
// origin with a fixed set of exposed headers and methods.
func (p *Patcher) patchCORS() error {
	err := p.edit("Gemfile", func(content string) (string, error) {
		return UncommentOrInsert(content, commentedCORSGem, activeCORSGem, railsGemAnchor)
	})
	if err != nil {
		return err
	}
	return p.rewrite("config/initializers/cors.rb", corsInitializer())
}

func corsInitializer() string {
	return fmt.Sprintf(`Rails.application.config.middleware.insert_before 0, Rack::Cors do
  allow do
    origins "http://localhost:%d"

    resource "*",
      headers: :any,
      expose: %%w[access-token expiry token-type uid client],
      methods: %%i[get post put patch delete options head]
  end
end
`, compose.FrontendPort)
}
