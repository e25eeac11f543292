package alarm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecPlayer plays the sound through an external command such as
// `afplay -v 4 Ping.aiff`. The call is synchronous.
type ExecPlayer struct {
	Command string
	Args    []string
}

// NewExecPlayer expands the {volume} and {file} placeholders of args.
func NewExecPlayer(command string, args []string, volume, file string) *ExecPlayer {
	return &ExecPlayer{Command: command, Args: ExpandArgs(args, volume, file)}
}

// ExpandArgs replaces the {volume} and {file} placeholders in args.
func ExpandArgs(args []string, volume, file string) []string {
	r := strings.NewReplacer("{volume}", volume, "{file}", file)
	out := make([]string, 0, len(args))
	for _, a := range args {
		out = append(out, r.Replace(a))
	}
	return out
}

// Play runs the command once and waits for it to exit.
func (p *ExecPlayer) Play(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, p.Command, p.Args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", p.Command, err, msg)
		}
		return fmt.Errorf("%s: %w", p.Command, err)
	}
	return nil
}
