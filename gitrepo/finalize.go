// Package gitrepo finalizes a generated project: one repository, one
// baseline commit capturing the tree exactly as generated.
package gitrepo

import (
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/railyard-cli/railyard/errors"
	"github.com/railyard-cli/railyard/logger"
	"github.com/railyard-cli/railyard/sym"
)

// Committer identity for the baseline commit. Deliberately not the user's
// git identity: the commit records what the generator produced, and the
// user's own history starts after it.
const (
	committerName  = "railyard"
	committerEmail = "railyard@localhost"
)

// Finalize initializes a repository at root, stages every generated file,
// and creates the baseline commit. Returns the commit hash. The message
// enumerates only features actually generated; failed runs never reach
// this step.
func Finalize(root, message string) (string, error) {
	log := logger.WithStage(sym.Git)

	repo, err := git.PlainInit(root, false)
	if err != nil {
		return "", errors.Wrap(err, "initializing repository")
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", errors.Wrap(err, "opening worktree")
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return "", errors.Wrap(err, "staging generated files")
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  committerName,
			Email: committerEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "creating baseline commit")
	}

	log.Infow(sym.Git+" baseline commit created", "hash", hash.String()[:8])
	return hash.String(), nil
}
