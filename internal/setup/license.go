package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	xerrors "github.com/extstrap/cli/internal/errors"
)

// LicenseFile is the license updated by the setup flow.
const LicenseFile = "LICENSE"

// copyrightPattern matches the copyright line owner and year.
var copyrightPattern = regexp.MustCompile(`Copyright \(c\) \d{4} [^\n]*`)

// UpdateLicense replaces the first copyright occurrence with the current
// year and the resolved author name. The rest of the file is untouched.
func UpdateLicense(dir, authorName string, now time.Time) error {
	path := filepath.Join(dir, LicenseFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return xerrors.NewNotFoundError(
				fmt.Sprintf("%s not found", LicenseFile), path, "")
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	loc := copyrightPattern.FindIndex(raw)
	if loc == nil {
		return nil
	}

	replacement := fmt.Sprintf("Copyright (c) %d %s", now.Year(), authorName)
	updated := append([]byte{}, raw[:loc[0]]...)
	updated = append(updated, replacement...)
	updated = append(updated, raw[loc[1]:]...)

	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
