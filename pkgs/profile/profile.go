// Package profile loads and persists fsh's startup profile: a small script
// of fsh source executed once before the REPL starts, grounded on the
// original fsh-terminal's profile.rs (read_profile/write_profile/
// update_profile/exists).
package profile

import (
	"os"

	"github.com/flucium/fsh/pkgs/errors"
	"github.com/flucium/fsh/pkgs/shell"
)

// DefaultContent is installed into a freshly created profile file, setting
// the prompt to "# ".
const DefaultContent = `$` + shell.FshPromptVar + ` = "` + shell.DefaultPromptValue + `"`

// Exists reports whether a profile file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read returns the contents of the profile file at path.
func Read(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(errors.NotFound, "profile file not found", err)
		}
		if os.IsPermission(err) {
			return "", errors.Wrap(errors.PermissionDenied, "permission denied while accessing profile file", err)
		}
		return "", errors.Wrap(errors.Internal, "failed to read profile file", err)
	}
	return string(content), nil
}

// Write creates or overwrites the profile file at path with content.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrap(errors.PermissionDenied, "permission denied while creating profile file", err)
	}
	return nil
}

// Update appends content to the existing profile file at path.
func Update(path, content string) error {
	existing, err := Read(path)
	if err != nil {
		return err
	}
	return Write(path, existing+content)
}

// LoadOrCreate returns the profile's contents, creating it with
// DefaultContent first if it doesn't yet exist.
func LoadOrCreate(path string) (string, error) {
	if !Exists(path) {
		if err := Write(path, DefaultContent); err != nil {
			return "", err
		}
		return DefaultContent, nil
	}
	return Read(path)
}
