package aoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// SessionEnvVar is checked first for the session cookie value.
const SessionEnvVar = "AOC_SESSION"

// SessionFileName is the fallback credential file in the home directory,
// following the community convention.
const SessionFileName = ".adventofcode.session"

// ResolveSession finds the session token: the AOC_SESSION environment
// variable wins, then ~/.adventofcode.session. The token is never stored in
// the repo config file.
func ResolveSession(fs afero.Fs) (string, error) {
	if v := strings.TrimSpace(os.Getenv(SessionEnvVar)); v != "" {
		return v, nil
	}

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, SessionFileName)
		if data, err := afero.ReadFile(fs, path); err == nil {
			if v := strings.TrimSpace(string(data)); v != "" {
				return v, nil
			}
		}
	}

	return "", fmt.Errorf("%w: set %s or create ~/%s", ErrNoSession, SessionEnvVar, SessionFileName)
}
