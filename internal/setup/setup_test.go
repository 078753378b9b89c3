package setup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extstrap/cli/internal/config"
	xerrors "github.com/extstrap/cli/internal/errors"
	"github.com/extstrap/cli/internal/execx"
	"github.com/extstrap/cli/internal/manifest"
	"github.com/extstrap/cli/internal/testutil"
)

const testManifest = `{
  "name": "extension-boilerplate",
  "displayName": "Extension Boilerplate",
  "description": "A boilerplate",
  "version": "0.0.1",
  "homepage": "https://github.com/old/extension-boilerplate#readme",
  "repository": {
    "type": "git",
    "url": "https://github.com/old/extension-boilerplate"
  },
  "bugs": {
    "url": "https://github.com/old/extension-boilerplate/issues",
    "email": "old@example.com"
  },
  "engines": {
    "vscode": "^1.80.0"
  },
  "devDependencies": {
    "@types/vscode": "^1.84.2"
  }
}
`

// answeringAsker accepts every question's initial value, overriding a few.
type answeringAsker struct {
	inputs   map[string]string
	confirms map[string]bool
	cancelAt string
}

func (a *answeringAsker) Input(title, _, initial string, validate func(string) error) (string, error) {
	if title == a.cancelAt {
		return "", xerrors.ErrCancelled
	}
	answer, ok := a.inputs[title]
	if !ok {
		answer = initial
	}
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (a *answeringAsker) Confirm(title string, initial bool) (bool, error) {
	if title == a.cancelAt {
		return false, xerrors.ErrCancelled
	}
	if answer, ok := a.confirms[title]; ok {
		return answer, nil
	}
	return initial, nil
}

func newTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, dir, manifest.FileName, testManifest)
	testutil.WriteFile(t, dir, ChangelogFile, "<!-- keep -->\n# Changelog\n- entry\n")
	testutil.WriteFile(t, dir, LicenseFile, "Copyright (c) 2020 OldName\n")
	return dir
}

func newGitRunner() *execx.FakeRunner {
	r := execx.NewFakeRunner()
	r.Outputs["git status --porcelain"] = ""
	r.Outputs["git config user.name"] = "Jane Doe"
	r.Outputs["git config user.email"] = "jane@example.com"
	r.Outputs["git config remote.origin.url"] = "git@github.com:jane/my-extension.git"
	r.Outputs["git add -A"] = ""
	r.Outputs["git commit -m "+CommitMessage] = ""
	return r
}

func newTestContext(dir string, runner *execx.FakeRunner, asker *answeringAsker) *Context {
	return &Context{
		Dir:    dir,
		Config: config.Default(),
		Runner: runner,
		Asker:  asker,
	}
}

func TestRun_FullFlow(t *testing.T) {
	dir := newTestRepo(t)
	runner := newGitRunner()
	asker := &answeringAsker{
		inputs: map[string]string{
			"Description": "Does something useful",
			"Keywords":    "a, b",
		},
		confirms: map[string]bool{
			"Install dependencies?": false,
		},
	}

	sc := newTestContext(dir, runner, asker)
	require.NoError(t, Run(context.Background(), sc))

	// Manifest rewritten with answers and resolved URLs.
	doc, err := manifest.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "my-extension", doc.Get("name"))
	assert.Equal(t, "My Extension", doc.Get("displayName"))
	assert.Equal(t, "https://github.com/jane/my-extension#readme", doc.Get("homepage"))
	bugs := doc.Get("bugs").(map[string]any)
	assert.Equal(t, "https://github.com/jane/my-extension/issues", bugs["url"])
	assert.Equal(t, "jane@example.com", bugs["email"])

	// Changelog reset and license updated.
	assert.Equal(t, "<!-- keep -->\n", testutil.ReadFile(t, dir+"/"+ChangelogFile))
	assert.Contains(t, testutil.ReadFile(t, dir+"/"+LicenseFile), "Jane Doe")

	// Install declined: no package manager invocation, but commit happened.
	assert.NotContains(t, runner.Calls, "npm install")
	assert.Contains(t, runner.Calls, "git add -A")
	assert.Contains(t, runner.Calls, "git commit -m "+CommitMessage)
}

func TestRun_InstallAndUpgradeMirrorsEngine(t *testing.T) {
	dir := newTestRepo(t)
	runner := newGitRunner()
	runner.Outputs["npm install"] = ""
	runner.Outputs["npm update"] = ""
	asker := &answeringAsker{
		inputs: map[string]string{
			"Description": "d",
			"Keywords":    "k",
		},
		confirms: map[string]bool{
			"Install dependencies?":           true,
			"Upgrade dependencies to latest?": true,
			"Commit the changes?":             false,
		},
	}

	sc := newTestContext(dir, runner, asker)
	require.NoError(t, Run(context.Background(), sc))

	assert.Contains(t, runner.Calls, "npm install")
	assert.Contains(t, runner.Calls, "npm update")
	assert.NotContains(t, runner.Calls, "git add -A")

	doc, err := manifest.Load(dir)
	require.NoError(t, err)
	engines := doc.Get("engines").(map[string]any)
	assert.Equal(t, "^1.84.2", engines["vscode"])
}

func TestRun_CancelLeavesFilesUntouched(t *testing.T) {
	dir := newTestRepo(t)
	runner := newGitRunner()
	asker := &answeringAsker{cancelAt: "Description"}

	sc := newTestContext(dir, runner, asker)
	err := Run(context.Background(), sc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, xerrors.ErrCancelled))

	assert.Equal(t, testManifest, testutil.ReadFile(t, dir+"/"+manifest.FileName))
	assert.Equal(t, "<!-- keep -->\n# Changelog\n- entry\n", testutil.ReadFile(t, dir+"/"+ChangelogFile))
	assert.Equal(t, "Copyright (c) 2020 OldName\n", testutil.ReadFile(t, dir+"/"+LicenseFile))
	assert.NotContains(t, runner.Calls, "git add -A")
}

func TestRun_DirtyTreeWarnsByDefault(t *testing.T) {
	dir := newTestRepo(t)
	runner := newGitRunner()
	runner.Outputs["git status --porcelain"] = " M package.json"
	asker := &answeringAsker{
		inputs: map[string]string{
			"Description": "d",
			"Keywords":    "k",
		},
		confirms: map[string]bool{
			"Install dependencies?": false,
			"Commit the changes?":   false,
		},
	}

	sc := newTestContext(dir, runner, asker)
	assert.NoError(t, Run(context.Background(), sc))
}

func TestRun_DirtyTreeAbortsWhenRequireClean(t *testing.T) {
	dir := newTestRepo(t)
	runner := newGitRunner()
	runner.Outputs["git status --porcelain"] = " M package.json"
	asker := &answeringAsker{}

	sc := newTestContext(dir, runner, asker)
	sc.Config.RequireClean = true

	err := Run(context.Background(), sc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, xerrors.ErrGit))

	// Aborted before repository resolution.
	assert.NotContains(t, runner.Calls, "git config user.name")
	assert.Equal(t, testManifest, testutil.ReadFile(t, dir+"/"+manifest.FileName))
}

func TestRun_FailingCommitAborts(t *testing.T) {
	dir := newTestRepo(t)
	runner := newGitRunner()
	runner.Errors["git commit -m "+CommitMessage] = xerrors.NewExternalError("git exited with status 1", nil)
	asker := &answeringAsker{
		inputs: map[string]string{
			"Description": "d",
			"Keywords":    "k",
		},
		confirms: map[string]bool{
			"Install dependencies?": false,
		},
	}

	sc := newTestContext(dir, runner, asker)
	err := Run(context.Background(), sc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, xerrors.ErrExternal))
}

func TestRun_BadRemoteAbortsBeforePrompts(t *testing.T) {
	dir := newTestRepo(t)
	runner := newGitRunner()
	runner.Outputs["git config remote.origin.url"] = "https://github.com/jane/my-extension.git"
	asker := &answeringAsker{}

	sc := newTestContext(dir, runner, asker)
	err := Run(context.Background(), sc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, xerrors.ErrGit))
	assert.Equal(t, testManifest, testutil.ReadFile(t, dir+"/"+manifest.FileName))
}
