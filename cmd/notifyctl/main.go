// Command notifyctl runs the queue processor from cron or a shell and repairs the queue.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "notifyctl",
		Short:         "Operate the notification queue",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		batchCommand(),
		daemonCommand(),
		recoverCommand(),
		migrateCommand(),
		listCommand(),
		statsCommand(),
		retryFailedCommand(),
		cancelCommand(),
		purgeCommand(),
		tokenCommand(),
	)

	return rootCmd
}
