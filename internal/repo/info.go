// Package repo resolves repository identity from local git configuration.
package repo

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	xerrors "github.com/extstrap/cli/internal/errors"
	"github.com/extstrap/cli/internal/execx"
)

// Info holds identity and location facts derived from git configuration.
// It is resolved once at startup and immutable afterward.
type Info struct {
	// Hostname is the git host, e.g. "github.com".
	Hostname string

	// AuthorName is git's user.name.
	AuthorName string

	// AuthorEmail is git's user.email.
	AuthorEmail string

	// AuthorHomepageURL is the HTTPS profile page derived from the remote.
	AuthorHomepageURL string

	// UserName is the user segment of the remote URL.
	UserName string

	// RepoName is the repository segment of the remote URL.
	RepoName string

	// RepoURL is the HTTPS repository page derived from the remote.
	RepoURL string
}

// remotePattern matches SSH-style remotes: git@<host>:<user>/<repo>.git
var remotePattern = regexp.MustCompile(`^git@([^:]+):([^/]+)/(.+)\.git$`)

// Resolve reads git configuration and derives repository identity.
// A missing or non-SSH remote.origin.url is fatal.
func Resolve(ctx context.Context, runner execx.Runner, dir string) (*Info, error) {
	name, err := gitConfig(ctx, runner, dir, "user.name")
	if err != nil {
		return nil, err
	}
	email, err := gitConfig(ctx, runner, dir, "user.email")
	if err != nil {
		return nil, err
	}
	remote, err := gitConfig(ctx, runner, dir, "remote.origin.url")
	if err != nil {
		return nil, err
	}

	host, user, repoName, err := ParseRemote(remote)
	if err != nil {
		return nil, err
	}

	return &Info{
		Hostname:          host,
		AuthorName:        name,
		AuthorEmail:       email,
		AuthorHomepageURL: fmt.Sprintf("https://%s/%s", host, user),
		UserName:          user,
		RepoName:          repoName,
		RepoURL:           fmt.Sprintf("https://%s/%s/%s", host, user, repoName),
	}, nil
}

// ParseRemote extracts host, user, and repo from an SSH-style remote URL.
func ParseRemote(remote string) (host, user, repoName string, err error) {
	m := remotePattern.FindStringSubmatch(strings.TrimSpace(remote))
	if m == nil {
		return "", "", "", xerrors.NewGitError(
			fmt.Sprintf("remote.origin.url %q is not an SSH remote (git@host:user/repo.git)", remote),
			map[string]string{"remote": remote},
			"Clone the boilerplate over SSH or fix the origin remote.")
	}
	return m[1], m[2], m[3], nil
}

// UncommittedChanges reports whether the working tree has uncommitted changes.
func UncommittedChanges(ctx context.Context, runner execx.Runner, dir string) (bool, error) {
	out, err := runner.Run(ctx, dir, "git", "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("checking working tree: %w", err)
	}
	return strings.TrimSpace(out) != "", nil
}

func gitConfig(ctx context.Context, runner execx.Runner, dir, key string) (string, error) {
	out, err := runner.Run(ctx, dir, "git", "config", key)
	if err != nil {
		return "", xerrors.NewGitError(
			fmt.Sprintf("reading git config %s", key),
			map[string]string{"key": key},
			fmt.Sprintf("Set it with: git config %s <value>", key))
	}
	value := strings.TrimSpace(out)
	if value == "" {
		return "", xerrors.NewGitError(
			fmt.Sprintf("git config %s is empty", key),
			map[string]string{"key": key},
			fmt.Sprintf("Set it with: git config %s <value>", key))
	}
	return value, nil
}
