// Package manifest loads, rewrites, and persists the package.json manifest.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/Masterminds/semver/v3"

	xerrors "github.com/extstrap/cli/internal/errors"
	"github.com/extstrap/cli/internal/repo"
)

// FileName is the manifest file rewritten by the setup flow.
const FileName = "package.json"

// prsWelcomeBadge is the badge whose link target follows the repository URL.
const prsWelcomeBadge = "PRs Welcome"

// engineDependency is the dev dependency whose resolved version is mirrored
// into engines.vscode after a dependency upgrade.
const engineDependency = "@types/vscode"

// repoURLPattern matches repository-URL-shaped substrings
// (https://host/user/repo) anywhere in a field value. Trailing
// path segments such as /issues or #readme are preserved.
var repoURLPattern = regexp.MustCompile(`https?://[\w.-]+/[\w.-]+/[\w.-]+`)

// rangePrefixPattern strips the range operator npm writes in front of a
// dependency version, such as ^, ~, or >=.
var rangePrefixPattern = regexp.MustCompile(`^[^0-9]*`)

// Fields holds the answer values applied onto the manifest.
type Fields struct {
	Name        string
	DisplayName string
	Description string
	AuthorName  string
	AuthorEmail string
	AuthorURL   string
	Keywords    []string
	Categories  []string
}

// Document is an in-memory copy of the manifest. Fields not touched by the
// setup flow survive re-serialization; only key ordering and whitespace may
// change.
type Document struct {
	path string
	data map[string]any
}

// Load reads the manifest from dir.
func Load(dir string) (*Document, error) {
	path := manifestPath(dir)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.NewNotFoundError(
				fmt.Sprintf("%s not found", FileName), path,
				"Run extsetup inside a cloned extension boilerplate.")
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// UseNumber keeps numeric fields as their literal source text so
	// untouched values do not round-trip through float64.
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var data map[string]any
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &Document{path: path, data: data}, nil
}

// Path returns the manifest file path.
func (d *Document) Path() string {
	return d.path
}

// Get returns a top-level field value.
func (d *Document) Get(key string) any {
	return d.data[key]
}

// Apply overwrites identity fields with answers and substitutes the resolved
// repository URL into every URL-bearing field.
func (d *Document) Apply(f Fields, info *repo.Info) {
	d.data["name"] = f.Name
	d.data["displayName"] = f.DisplayName
	d.data["description"] = f.Description
	d.data["author"] = map[string]any{
		"name":  f.AuthorName,
		"email": f.AuthorEmail,
		"url":   f.AuthorURL,
	}
	d.data["keywords"] = toAnySlice(f.Keywords)
	d.data["categories"] = toAnySlice(f.Categories)

	d.substituteURL("homepage", info.RepoURL)
	if repository, ok := d.data["repository"].(map[string]any); ok {
		substituteURLIn(repository, "url", info.RepoURL)
	}

	bugs, ok := d.data["bugs"].(map[string]any)
	if !ok {
		bugs = map[string]any{}
		d.data["bugs"] = bugs
	}
	substituteURLIn(bugs, "url", info.RepoURL)
	bugs["email"] = info.AuthorEmail

	d.rewriteBadges(info.RepoURL)
}

// MirrorEngine mirrors engines.vscode from the resolved @types/vscode
// version. The dependency's range prefix is dropped and the version is
// normalized through semver.
func (d *Document) MirrorEngine() error {
	devDeps, ok := d.data["devDependencies"].(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := devDeps[engineDependency].(string)
	if !ok {
		return nil
	}

	version, err := semver.NewVersion(rangePrefixPattern.ReplaceAllString(raw, ""))
	if err != nil {
		return fmt.Errorf("parsing %s version %q: %w", engineDependency, raw, err)
	}

	engines, ok := d.data["engines"].(map[string]any)
	if !ok {
		engines = map[string]any{}
		d.data["engines"] = engines
	}
	engines["vscode"] = "^" + version.String()
	return nil
}

// Save serializes the document with two-space indentation and a trailing
// newline, overwriting the manifest in place.
func (d *Document) Save() error {
	// An Encoder with HTML escaping off keeps ampersands in untouched URL
	// fields byte-for-byte intact; MarshalIndent would rewrite them.
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d.data); err != nil {
		return fmt.Errorf("serializing %s: %w", FileName, err)
	}

	if err := os.WriteFile(d.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", d.path, err)
	}
	return nil
}

func (d *Document) substituteURL(key, repoURL string) {
	substituteURLIn(d.data, key, repoURL)
}

func (d *Document) rewriteBadges(repoURL string) {
	badges, ok := d.data["badges"].([]any)
	if !ok {
		return
	}
	for _, b := range badges {
		badge, ok := b.(map[string]any)
		if !ok {
			continue
		}
		if badge["description"] == prsWelcomeBadge {
			substituteURLIn(badge, "href", repoURL)
		}
	}
}

func substituteURLIn(m map[string]any, key, repoURL string) {
	if value, ok := m[key].(string); ok {
		m[key] = repoURLPattern.ReplaceAllString(value, repoURL)
	}
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func manifestPath(dir string) string {
	if dir == "" {
		return FileName
	}
	return filepath.Join(dir, FileName)
}
