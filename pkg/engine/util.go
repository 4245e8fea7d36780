package engine

import (
	"bufio"
	"context"
	"fmt"
	"github.com/seekerror/logw"
	"os"
)

// ReadStdinLines feeds stdin to the console front-end one line at a time, so the move-entry
// loop in cmd/rookwise can range over a channel instead of polling a scanner directly.
func ReadStdinLines(ctx context.Context) <-chan string {
	lines := make(chan string, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "input: %v", scanner.Text())
			lines <- scanner.Text()
		}
	}()
	return lines
}

// WriteStdoutLines drains a channel of board dumps and status messages to stdout, logging each
// at debug level so a -v run shows the full transcript of a game.
func WriteStdoutLines(ctx context.Context, lines <-chan string) {
	for line := range lines {
		logw.Debugf(ctx, "output: %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}
