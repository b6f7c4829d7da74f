/*
kinema inspects scene hierarchies and transform animations from the
command line, using the engine math kernel.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spaghettifunk/kinema/engine/core"
)

func main() {
	// signal context to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := fang.Execute(ctx, newRootCommand()); err != nil {
		core.LogDebug("exiting: %s", err)
		stop()
		os.Exit(1)
	}
}
