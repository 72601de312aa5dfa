package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary
// directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	// "go run" builds into the system temp directory.
	tempDir := os.TempDir()
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir)) {
		return true
	}

	// "go test" produces a .test binary.
	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}

// ResolveLedgerPath determines the actual path for the ledger file based on
// safety rules. If forceTemp is true, the file is re-rooted into a temporary
// directory so demos and `go run` sessions never clobber a real inventory
// file.
func ResolveLedgerPath(userPath string, forceTemp bool) string {
	if userPath == "" {
		userPath = DefaultFile
	}
	if !forceTemp {
		return userPath
	}

	// EXCEPTION: a path that is already inside the system temp directory is
	// assumed intentional (e.g. created by t.TempDir()) and kept as is.
	cleanUserPath := filepath.Clean(userPath)
	tempRoot := os.TempDir()
	rel, err := filepath.Rel(tempRoot, cleanUserPath)
	if err == nil && !strings.HasPrefix(rel, "..") {
		return cleanUserPath
	}

	// Otherwise re-root into a namespaced dev directory, keeping only the
	// file name so directory traversal cannot escape it.
	name := filepath.Base(cleanUserPath)
	if name == "." || name == string(os.PathSeparator) {
		name = DefaultFile
	}
	return filepath.Join(os.TempDir(), "stockroom-dev", name)
}
