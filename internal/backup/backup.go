// Package backup persists pre-mutation copies of config files.
package backup

import (
	"fmt"
	"io/fs"

	"github.com/eth-fabric/portsync/internal/errors"
	"github.com/eth-fabric/portsync/internal/system"
)

// Suffix is appended to a file's path to form its backup path.
const Suffix = ".bak"

// Path returns the backup path for a file.
func Path(path string) string {
	return path + Suffix
}

// WriteWithBackup writes newText to path after copying the current
// content to the backup path, and returns the backup path. The backup
// write completes before the original is overwritten, so a failed main
// write still leaves the pre-change state in the backup. Any prior
// backup is overwritten without warning.
func WriteWithBackup(fsys system.FileSystem, path, newText string) (string, error) {
	current, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.ConfigNotFound(path)
		}
		return "", errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to read %s", path), err)
	}

	bak := Path(path)
	if err := fsys.WriteFile(bak, current, 0644); err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to write backup %s", bak), err)
	}

	if err := fsys.WriteFile(path, []byte(newText), 0644); err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to write %s", path), err)
	}

	return bak, nil
}
