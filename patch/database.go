package patch

import "fmt"

// patchDatabase replaces the generator's default database config wholesale
// with one keyed by environment-variable lookups, matching the compose
// topology: development and test use the project's snake-case identifiers,
// production a single connection-string variable.
func (p *Patcher) patchDatabase() error {
	return p.rewrite("config/database.yml", databaseYML(p.cfg.SnakeName))
}

func databaseYML(snakeName string) string {
	return fmt.Sprintf(`default: &default
  adapter: postgresql
  encoding: unicode
  pool: <%%= ENV.fetch("RAILS_MAX_THREADS") { 5 } %%>
  host: <%%= ENV.fetch("DATABASE_HOST") { "db" } %%>
  username: <%%= ENV.fetch("DATABASE_USER") { "postgres" } %%>
  password: <%%= ENV.fetch("DATABASE_PASSWORD") { "postgres" } %%>

development:
  <<: *default
  database: %[1]s_development

test:
  <<: *default
  database: %[1]s_test

production:
  url: <%%= ENV["DATABASE_URL"] %%>
`, snakeName)
}
