package gitrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scratchProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "backend", "config"), 0o755))
	files := map[string]string{
		"docker-compose.yml":          "services:\n  api:\n    build: ./backend\n",
		"README.md":                   "# blog\n",
		".gitignore":                  ".env\n",
		"backend/Gemfile":             "gem \"rails\"\n",
		"backend/config/database.yml": "development:\n  database: blog_development\n",
	}
	for rel, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, rel), []byte(content), 0o644))
	}
	return root
}

func TestFinalizeCreatesBaselineCommit(t *testing.T) {
	root := scratchProject(t)
	message := "Initial commit: blog (Rails API + PostgreSQL)"

	hash, err := Finalize(root, message)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	repo, err := git.PlainOpen(root)
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)

	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Equal(t, message, commit.Message)
	assert.Equal(t, committerName, commit.Author.Name)
	assert.Equal(t, hash, head.Hash().String())

	// Everything generated is in the one commit.
	tree, err := commit.Tree()
	require.NoError(t, err)
	for _, rel := range []string{"docker-compose.yml", "README.md", ".gitignore"} {
		_, err := tree.File(rel)
		assert.NoError(t, err, "expected %s in baseline commit", rel)
	}
	_, err = tree.File("backend/config/database.yml")
	assert.NoError(t, err)

	// Working tree is clean afterward.
	wt, err := repo.Worktree()
	require.NoError(t, err)
	status, err := wt.Status()
	require.NoError(t, err)
	assert.True(t, status.IsClean())
}

func TestFinalizeMessageCarriesFeatureSummary(t *testing.T) {
	root := scratchProject(t)

	_, err := Finalize(root, "Initial commit: shop (Rails API + PostgreSQL + React + Sidekiq)")
	require.NoError(t, err)

	repo, err := git.PlainOpen(root)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)

	assert.Contains(t, commit.Message, "+ React")
	assert.Contains(t, commit.Message, "+ Sidekiq")
}

func TestFinalizeFailsOnExistingRepository(t *testing.T) {
	root := scratchProject(t)
	_, err := Finalize(root, "Initial commit: blog (Rails API + PostgreSQL)")
	require.NoError(t, err)

	// A second finalize has nothing to own: the repository already exists.
	_, err = Finalize(root, "again")
	require.Error(t, err)
}
