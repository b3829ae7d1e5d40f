package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNothingToCommit is returned by Commit when the export did not change
var ErrNothingToCommit = errors.New("nothing to commit")

// Author signs export commits
type Author struct {
	Name  string
	Email string
}

// Commit stages everything under dir and commits it, initializing a
// repository first when dir is not one yet
func Commit(dir, message string, author Author, when time.Time) (plumbing.Hash, error) {
	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(dir, false)
	}
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to open worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to stage export: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to read status: %w", err)
	}
	if status.IsClean() {
		return plumbing.ZeroHash, ErrNothingToCommit
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: author.Name, Email: author.Email, When: when},
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to commit: %w", err)
	}
	return hash, nil
}
