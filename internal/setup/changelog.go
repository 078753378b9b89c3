package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	xerrors "github.com/extstrap/cli/internal/errors"
)

// ChangelogFile is the changelog reset by the setup flow.
const ChangelogFile = "CHANGELOG.md"

// commentMarker prefixes the changelog lines that survive the reset.
const commentMarker = "<!--"

// ResetChangelog rewrites the changelog to contain only its comment lines.
// Every line starting with the comment marker is kept in original order,
// wherever it appears; everything else is dropped. Running the reset twice
// is idempotent.
func ResetChangelog(dir string) error {
	path := filepath.Join(dir, ChangelogFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return xerrors.NewNotFoundError(
				fmt.Sprintf("%s not found", ChangelogFile), path, "")
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var kept []string
	for _, line := range strings.Split(string(raw), "\n") {
		if strings.HasPrefix(line, commentMarker) {
			kept = append(kept, line)
		}
	}

	content := strings.Join(kept, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
