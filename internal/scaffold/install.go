package scaffold

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/pwa-tools/pwagen/internal/debug"
)

// packageManagers lists the install tools probed for, in preference order.
var packageManagers = []string{"npm", "pnpm", "yarn"}

// detectPackageManager returns the package manager to use for the install
// trigger. A non-empty preferred name must resolve on PATH; otherwise the
// first tool found in preference order wins.
func detectPackageManager(preferred string) (string, error) {
	if preferred != "" {
		if _, err := exec.LookPath(preferred); err != nil {
			return "", fmt.Errorf("package manager %q not found on PATH: %w", preferred, err)
		}
		return preferred, nil
	}

	for _, pm := range packageManagers {
		if _, err := exec.LookPath(pm); err == nil {
			return pm, nil
		}
	}

	return "", fmt.Errorf("no package manager found on PATH (tried %v)", packageManagers)
}

// runInstall executes `<pm> install` in dir. The caller treats a failure as
// a non-fatal, logged condition: the generated project is complete without
// installed dependencies.
func runInstall(ctx context.Context, dir, preferred string) (string, error) {
	pm, err := detectPackageManager(preferred)
	if err != nil {
		return "", err
	}

	debug.Debug("[scaffold] Running install: %s install (dir: %s)", pm, dir)
	cmd := exec.CommandContext(ctx, pm, "install")
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		debug.Debug("[scaffold] Install failed: %v\n%s", err, output)
		return pm, fmt.Errorf("%s install failed: %w", pm, err)
	}

	debug.Debug("[scaffold] Install complete: %s", pm)
	return pm, nil
}
