package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kubev2v/jobqueue/internal/builtin"
	"github.com/kubev2v/jobqueue/internal/cmd"
	"github.com/kubev2v/jobqueue/pkg/scheduler"
)

func main() {
	// Process workers re-execute this binary; they need the registry but
	// nothing else.
	builtin.Register()
	if scheduler.IsWorkerProcess() {
		os.Exit(scheduler.RunWorkerProcess())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
