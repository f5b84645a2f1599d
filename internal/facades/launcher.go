package facades

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/logger"
)

// waitDelay bounds how long Wait lingers after the opener is killed.
const waitDelay = 100 * time.Millisecond

// ErrEmptyURI is returned when Launch is called without a target.
var ErrEmptyURI = errors.New("empty resource uri")

// CommandLauncher opens resource URIs by running an external opener command.
type CommandLauncher struct {
	name string
	args []string
}

// NewCommandLauncher creates a launcher for the given command line. The URI is
// appended as the last argument. An empty command selects the platform opener.
func NewCommandLauncher(command string) *CommandLauncher {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		fields = platformOpener(runtime.GOOS)
	}
	return &CommandLauncher{name: fields[0], args: fields[1:]}
}

func platformOpener(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Launch runs the opener and waits for it to exit or for ctx to expire.
// Processes the opener leaves running (a player or browser) are not waited for.
func (l *CommandLauncher) Launch(ctx context.Context, uri string) error {
	if uri == "" {
		return ErrEmptyURI
	}

	args := append(append([]string{}, l.args...), uri)
	cmd := exec.CommandContext(ctx, l.name, args...)
	// No pipes: a detached child holding them would keep Wait blocked.
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil
	cmd.WaitDelay = waitDelay

	err := cmd.Start()
	if err == nil {
		err = cmd.Wait()
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		logger.Log.Errorw("launcher command failed",
			"command", l.name,
			"uri", uri,
			"error", err,
		)
		return fmt.Errorf("launch %s: %w", uri, err)
	}

	logger.Log.Infow("resource launched", "command", l.name, "uri", uri)
	return nil
}
