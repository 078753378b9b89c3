package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "github.com/extstrap/cli/internal/errors"
	"github.com/extstrap/cli/internal/execx"
)

func TestParseRemote(t *testing.T) {
	tests := []struct {
		name     string
		remote   string
		wantHost string
		wantUser string
		wantRepo string
		wantErr  bool
	}{
		{
			name:     "github ssh remote",
			remote:   "git@github.com:jane/my-extension.git",
			wantHost: "github.com",
			wantUser: "jane",
			wantRepo: "my-extension",
		},
		{
			name:     "self-hosted remote",
			remote:   "git@git.example.org:team/tool.git",
			wantHost: "git.example.org",
			wantUser: "team",
			wantRepo: "tool",
		},
		{
			name:    "https remote rejected",
			remote:  "https://github.com/jane/my-extension.git",
			wantErr: true,
		},
		{
			name:    "missing .git suffix rejected",
			remote:  "git@github.com:jane/my-extension",
			wantErr: true,
		},
		{
			name:    "empty remote rejected",
			remote:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, user, repoName, err := ParseRemote(tt.remote)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, xerrors.ErrGit))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantUser, user)
			assert.Equal(t, tt.wantRepo, repoName)
		})
	}
}

func TestResolve(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Outputs["git config user.name"] = "Jane Doe"
	r.Outputs["git config user.email"] = "jane@example.com"
	r.Outputs["git config remote.origin.url"] = "git@github.com:jane/my-extension.git"

	info, err := Resolve(context.Background(), r, "")
	require.NoError(t, err)

	assert.Equal(t, "github.com", info.Hostname)
	assert.Equal(t, "Jane Doe", info.AuthorName)
	assert.Equal(t, "jane@example.com", info.AuthorEmail)
	assert.Equal(t, "https://github.com/jane", info.AuthorHomepageURL)
	assert.Equal(t, "jane", info.UserName)
	assert.Equal(t, "my-extension", info.RepoName)
	assert.Equal(t, "https://github.com/jane/my-extension", info.RepoURL)
}

func TestResolve_BadRemoteIsFatal(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Outputs["git config user.name"] = "Jane Doe"
	r.Outputs["git config user.email"] = "jane@example.com"
	r.Outputs["git config remote.origin.url"] = "https://github.com/jane/my-extension.git"

	_, err := Resolve(context.Background(), r, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, xerrors.ErrGit))
}

func TestResolve_MissingConfig(t *testing.T) {
	r := execx.NewFakeRunner()
	// user.name unscripted: git config exits non-zero for unset keys.

	_, err := Resolve(context.Background(), r, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, xerrors.ErrGit))
}

func TestUncommittedChanges(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Outputs["git status --porcelain"] = " M package.json\n?? notes.txt"

	dirty, err := UncommittedChanges(context.Background(), r, "")
	require.NoError(t, err)
	assert.True(t, dirty)

	r.Outputs["git status --porcelain"] = ""
	dirty, err = UncommittedChanges(context.Background(), r, "")
	require.NoError(t, err)
	assert.False(t, dirty)
}
