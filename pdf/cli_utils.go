package pdf

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ConvertTimeout bounds an office conversion; it starts a whole office suite
const ConvertTimeout = 60 * time.Second

// execCommandWithTimeout executes a command bounded by both ctx and timeout
func execCommandWithTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("command timed out after %v", timeout)
	}

	if err != nil {
		return output, fmt.Errorf("command failed: %w", err)
	}

	return output, nil
}

// CheckBinaryAvailable verifies that an external tool is available in PATH
func CheckBinaryAvailable(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%w: %s not found: %v", ErrConverterUnavailable, name, err)
	}
	return nil
}
