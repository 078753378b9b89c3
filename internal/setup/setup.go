package setup

import (
	"context"
	"os"
	"path/filepath"
	"time"

	xerrors "github.com/extstrap/cli/internal/errors"
	"github.com/extstrap/cli/internal/manifest"
	"github.com/extstrap/cli/internal/output"
	"github.com/extstrap/cli/internal/prompt"
	"github.com/extstrap/cli/internal/repo"
)

// CommitMessage is the fixed message for the final commit.
const CommitMessage = "chore: initialize extension"

// dependencyTimeout bounds each package manager invocation.
const dependencyTimeout = 15 * time.Minute

// Run executes the setup steps in fixed order. A failing step aborts
// everything after it. Cancellation during the prompt flow surfaces as
// *prompt.Cancellation with every file untouched.
//
// Step sequence:
//  1. working-tree check (warn, or abort when requireClean)
//  2. repository info resolution
//  3. prompt flow
//  4. manifest rewrite
//  5. changelog reset
//  6. license update
//  7. dependency install (conditional)
//  8. dependency upgrade + engine mirroring (conditional)
//  9. git commit (conditional)
// 10. final notes
func Run(ctx context.Context, sc *Context) error {
	if err := checkWorkingTree(ctx, sc); err != nil {
		return err
	}

	output.StepStart("Resolving repository info")
	info, err := repo.Resolve(ctx, sc.Runner, sc.Dir)
	if err != nil {
		return err
	}
	sc.Info = info
	output.StepDone("Repository info resolved: " + output.StyleNoun.Render(info.RepoURL))

	// The manifest is loaded before prompting so a missing package.json
	// fails fast, but it is only written after the flow completes.
	doc, err := manifest.Load(sc.Dir)
	if err != nil {
		return err
	}
	sc.Manifest = doc

	answers, err := prompt.NewFlow(sc.Asker, info, depsInstalled(sc.Dir)).Run()
	if err != nil {
		return err
	}
	sc.Answers = answers

	if err := rewriteManifest(sc); err != nil {
		return err
	}

	output.StepStart("Resetting " + ChangelogFile)
	if err := ResetChangelog(sc.Dir); err != nil {
		return err
	}
	output.StepDone(ChangelogFile + " reset")

	output.StepStart("Updating " + LicenseFile)
	if err := UpdateLicense(sc.Dir, answers.AuthorName, time.Now()); err != nil {
		return err
	}
	output.StepDone(LicenseFile + " updated")

	if err := manageDependencies(ctx, sc); err != nil {
		return err
	}

	if err := commit(ctx, sc); err != nil {
		return err
	}

	printNotes(sc)
	return nil
}

// checkWorkingTree warns about uncommitted changes. The run is only aborted
// when requireClean is set.
func checkWorkingTree(ctx context.Context, sc *Context) error {
	output.StepStart("Checking working tree")
	dirty, err := repo.UncommittedChanges(ctx, sc.Runner, sc.Dir)
	if err != nil {
		return err
	}
	if !dirty {
		output.StepDone("Working tree clean")
		return nil
	}

	if sc.Config.RequireClean {
		return xerrors.NewGitError(
			"working tree has uncommitted changes",
			nil,
			"Commit or stash your changes, or run without --require-clean.")
	}
	output.Warn("working tree has uncommitted changes; the setup commit will include them")
	return nil
}

func rewriteManifest(sc *Context) error {
	output.StepStart("Rewriting " + manifest.FileName)

	a := sc.Answers
	sc.Manifest.Apply(manifest.Fields{
		Name:        a.Name,
		DisplayName: a.DisplayName,
		Description: a.Description,
		AuthorName:  a.AuthorName,
		AuthorEmail: a.AuthorEmail,
		AuthorURL:   a.AuthorURL,
		Keywords:    a.Keywords,
		Categories:  a.Categories,
	}, sc.Info)

	if err := sc.Manifest.Validate(); err != nil {
		return err
	}
	if err := sc.Manifest.Save(); err != nil {
		return err
	}

	output.StepDone(manifest.FileName + " rewritten")
	return nil
}

func manageDependencies(ctx context.Context, sc *Context) error {
	pm := sc.Config.PackageManager

	if !sc.Answers.InstallDeps {
		output.StepSkipped("Installing dependencies", "declined")
		return nil
	}

	if depsInstalled(sc.Dir) {
		output.StepSkipped("Installing dependencies", "node_modules already present")
	} else {
		output.StepStart("Installing dependencies")
		err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
			_, runErr := sc.Runner.Run(ctx, sc.Dir, pm, sc.Config.InstallArgs()...)
			return runErr
		}, output.WithTitle(pm+" install"), output.WithTimeout(dependencyTimeout))
		if err != nil {
			return err
		}
		output.StepDone("Dependencies installed")
	}

	if !sc.Answers.UpdateDeps {
		return nil
	}

	output.StepStart("Upgrading dependencies")
	err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
		_, runErr := sc.Runner.Run(ctx, sc.Dir, pm, sc.Config.UpdateArgs()...)
		return runErr
	}, output.WithTitle(pm+" upgrade"), output.WithTimeout(dependencyTimeout))
	if err != nil {
		return err
	}

	// The upgrade may have bumped @types/vscode; re-read the manifest and
	// mirror the resolved version into engines.vscode.
	doc, err := manifest.Load(sc.Dir)
	if err != nil {
		return err
	}
	if err := doc.MirrorEngine(); err != nil {
		return err
	}
	if err := doc.Save(); err != nil {
		return err
	}
	sc.Manifest = doc

	output.StepDone("Dependencies upgraded")
	return nil
}

func commit(ctx context.Context, sc *Context) error {
	if !sc.Answers.Commit {
		output.StepSkipped("Committing changes", "declined")
		return nil
	}

	output.StepStart("Committing changes")
	if _, err := sc.Runner.Run(ctx, sc.Dir, "git", "add", "-A"); err != nil {
		return err
	}
	if _, err := sc.Runner.Run(ctx, sc.Dir, "git", "commit", "-m", CommitMessage); err != nil {
		return err
	}
	output.StepDone("Changes committed")
	return nil
}

func printNotes(sc *Context) {
	output.Println("")
	output.Println(output.StyleSummary.Render(sc.Answers.DisplayName + " is ready."))
	output.Print(output.RenderFileList([]output.FileEntry{
		{Path: manifest.FileName, Description: "Extension manifest"},
		{Path: ChangelogFile, Description: "Reset to its comment lines"},
		{Path: LicenseFile, Description: "Copyright year and owner"},
	}))
	output.Println(output.FormatLink("Repository", sc.Info.RepoURL))
	output.Println(output.FormatLink("Publishing guide", "https://code.visualstudio.com/api/working-with-extensions/publishing-extension"))
	output.Println(output.FormatLink("Extension manifest reference", "https://code.visualstudio.com/api/references/extension-manifest"))
}

// depsInstalled reports whether dependencies already appear installed.
func depsInstalled(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "node_modules"))
	return err == nil && info.IsDir()
}
