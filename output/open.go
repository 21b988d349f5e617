package output

import (
	"fmt"
	"os/exec"
	"runtime"
)

// opener returns the platform command that opens path in its default viewer.
func opener(goos, path string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// Open hands path to the host's default application and does not wait for
// the viewer to exit.
func Open(path string) error {
	cmd := opener(runtime.GOOS, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("output: open %q with %s: %w", path, cmd.Path, err)
	}

	return cmd.Process.Release()
}
