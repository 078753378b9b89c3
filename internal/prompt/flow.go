package prompt

import (
	"errors"

	xerrors "github.com/extstrap/cli/internal/errors"
	"github.com/extstrap/cli/internal/repo"
)

// Answers is the structured result of a completed prompt flow.
type Answers struct {
	Name        string
	DisplayName string
	Description string
	AuthorName  string
	AuthorEmail string
	AuthorURL   string
	Keywords    []string
	Categories  []string

	// InstallDeps is true when dependencies should be installed (or already
	// are). UpdateDeps is only meaningful when InstallDeps is true.
	InstallDeps bool
	UpdateDeps  bool
	Commit      bool
}

// Cancellation is returned when the user aborts the flow. Partial answers
// are discarded; the run exits cleanly.
type Cancellation struct {
	// ShowHelp is true when the flow was cancelled before the
	// install/update choice, so the final notes have not been shown.
	ShowHelp bool
}

// Error implements the error interface.
func (c *Cancellation) Error() string {
	return "setup cancelled"
}

// Unwrap marks the cancellation as a clean outcome.
func (c *Cancellation) Unwrap() error {
	return xerrors.ErrCancelled
}

// Flow runs the ordered question sequence.
type Flow struct {
	asker Asker
	info  *repo.Info

	// depsInstalled skips the install question when node_modules exists.
	depsInstalled bool
}

// NewFlow creates a prompt flow. depsInstalled reports whether dependencies
// already appear installed in the working directory.
func NewFlow(asker Asker, info *repo.Info, depsInstalled bool) *Flow {
	return &Flow{asker: asker, info: info, depsInstalled: depsInstalled}
}

// Run asks every question in order and returns the collected answers.
// Cancellation at any question returns a *Cancellation error and discards
// everything collected so far.
func (f *Flow) Run() (*Answers, error) {
	a := &Answers{}
	installChoiceMade := false

	err := f.collect(a, &installChoiceMade)
	if err != nil {
		if errors.Is(err, xerrors.ErrCancelled) {
			return nil, &Cancellation{ShowHelp: !installChoiceMade}
		}
		return nil, err
	}
	return a, nil
}

func (f *Flow) collect(a *Answers, installChoiceMade *bool) error {
	var err error

	a.Name, err = f.asker.Input("Extension name", "lowercase letters and hyphens",
		f.info.RepoName, ValidateName)
	if err != nil {
		return err
	}

	a.DisplayName, err = f.asker.Input("Display name", "",
		Capitalize(a.Name), ValidateDisplayName(a.Name))
	if err != nil {
		return err
	}

	a.Description, err = f.asker.Input("Description", "",
		"", ValidateNonEmpty("description"))
	if err != nil {
		return err
	}

	a.AuthorName, err = f.asker.Input("Author name", "",
		f.info.AuthorName, ValidateNonEmpty("author name"))
	if err != nil {
		return err
	}

	a.AuthorEmail, err = f.asker.Input("Author email", "",
		f.info.AuthorEmail, ValidateNonEmpty("author email"))
	if err != nil {
		return err
	}

	a.AuthorURL, err = f.asker.Input("Author URL", "",
		f.info.AuthorHomepageURL, ValidateNonEmpty("author url"))
	if err != nil {
		return err
	}

	keywords, err := f.asker.Input("Keywords", "comma separated, at most 5",
		"", ValidateKeywords)
	if err != nil {
		return err
	}
	a.Keywords = SplitList(keywords)

	categories, err := f.asker.Input("Categories", "comma separated, from the marketplace list",
		"Other", ValidateCategories)
	if err != nil {
		return err
	}
	a.Categories = SplitList(categories)

	if f.depsInstalled {
		a.InstallDeps = true
	} else {
		a.InstallDeps, err = f.asker.Confirm("Install dependencies?", true)
		if err != nil {
			return err
		}
	}

	if a.InstallDeps {
		a.UpdateDeps, err = f.asker.Confirm("Upgrade dependencies to latest?", false)
		if err != nil {
			return err
		}
	}

	*installChoiceMade = true

	a.Commit, err = f.asker.Confirm("Commit the changes?", true)
	return err
}
