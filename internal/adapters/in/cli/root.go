// Package cli implements the CLI adapter of the host manager: the interactive
// menu and the cobra subcommands that mirror its actions.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/nginx-host-manager/internal/app"
	"github.com/bnema/nginx-host-manager/internal/boundaries/in"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// services is what the commands need from the app kernel.
type services interface {
	Hosts() in.HostService
	Proxy() in.ProxyService
	Close() error
}

// openServices builds the services for a config path. Tests replace it.
var openServices = func(configPath string) (services, error) {
	k, err := app.NewKernel(configPath)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// NewRootCmd creates the root command. Without a subcommand it runs the
// interactive menu.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "host-manager",
		Short: "Manage an nginx reverse proxy container and its virtual hosts",
		Long: `host-manager runs a single nginx reverse proxy container and manages the
virtual host configs mounted into it. Run it without arguments for the
interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(configPath, func(svc services) error {
				return newMenu(svc, newSurveyPrompter(), cmd.OutOrStdout()).Run(cmd.Context())
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default ./host-manager.yaml)")

	rootCmd.AddCommand(newProxyCmds(&configPath)...)
	rootCmd.AddCommand(newHostsCmd(&configPath))
	rootCmd.AddCommand(newInitCmd(&configPath))
	rootCmd.AddCommand(newConfigCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// withServices opens the services, runs fn and releases them.
func withServices(configPath string, fn func(svc services) error) error {
	svc, err := openServices(configPath)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()
	return fn(svc)
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				cmd.Println(Version)
				return
			}
			cmd.Printf("host-manager %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only the version number")

	return cmd
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	if version != "" {
		Version = version
	}
	if commit != "" {
		Commit = commit
	}
	if date != "" {
		BuildDate = date
	}
}
