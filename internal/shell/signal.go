package shell

import (
	"os"
	"os/signal"
)

// ignoreInterrupt neutralizes SIGINT at the process level: Ctrl-C is meant
// to be observed only as a key event by the terminal's raw-mode reader,
// never as a signal that could kill the process mid-command.
func ignoreInterrupt() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		for range ch {
		}
	}()
}
