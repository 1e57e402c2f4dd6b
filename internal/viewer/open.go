package viewer

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Open shows the file at path with the platform's default application.
func Open(ctx context.Context, path string) error {
	name, args, err := openCommand(runtime.GOOS, path)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	// The opener hands the file to another process and exits; its status
	// says nothing about whether the page is shown.
	go func() { _ = cmd.Wait() }()
	return nil
}

// openCommand returns the opener invocation for goos.
func openCommand(goos, path string) (string, []string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	case "darwin":
		return "open", []string{path}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}
