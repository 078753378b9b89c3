// Package setup orchestrates the interactive boilerplate setup flow.
package setup

import (
	"github.com/extstrap/cli/internal/config"
	"github.com/extstrap/cli/internal/execx"
	"github.com/extstrap/cli/internal/manifest"
	"github.com/extstrap/cli/internal/prompt"
	"github.com/extstrap/cli/internal/repo"
)

// Context carries everything the setup steps need. It is constructed once
// by the orchestrator and threaded explicitly through each step; there is
// no shared global state.
type Context struct {
	// Dir is the repository directory being customized.
	Dir string

	// Config is the resolved tool configuration.
	Config *config.Config

	// Runner executes external commands (git, package manager).
	Runner execx.Runner

	// Asker presents the interactive questions.
	Asker prompt.Asker

	// Info is filled by the repository-info step.
	Info *repo.Info

	// Answers is filled by the prompt-flow step.
	Answers *prompt.Answers

	// Manifest is loaded once and rewritten in place.
	Manifest *manifest.Document
}
