// Package cmd is the process entry point of host-manager.
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bnema/nginx-host-manager/internal/adapters/in/cli"
	"github.com/bnema/nginx-host-manager/pkg/logger"
)

// ExecuteCLI runs the root command with the build information and exits
// with a non-zero status when it fails.
func ExecuteCLI(build, commit, date string) {
	cli.SetVersionInfo(build, commit, date)
	logger.GetLogger().ConfigureFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Execute runs the root command with args and returns the exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := cli.NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cli.PrintError(stderr, err)
		return 1
	}
	return 0
}
