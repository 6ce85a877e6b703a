package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/nginx-host-manager/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/nginx-host-manager/internal/app"
	"github.com/bnema/nginx-host-manager/internal/config"
)

// newInitCmd creates the command that scaffolds the proxy directory.
func newInitCmd(configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the proxy directory with a Dockerfile and a host template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			written, err := app.Scaffold(cfg, force)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(written) == 0 {
				return cliWriteLine(w, styles.RenderInfo(fmt.Sprintf("%s is already initialized", cfg.Paths.Root)))
			}
			for _, f := range written {
				_ = cliWriteLine(w, styles.Theme.Muted.Render("  "+f))
			}
			return cliWriteLine(w, styles.RenderSuccess(fmt.Sprintf("initialized %s", cfg.Paths.Root)))
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files with the defaults")

	return cmd
}

// newConfigCmd creates the config command group.
func newConfigCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(configPath), newConfigShowCmd(configPath))
	return cmd
}

func newConfigInitCmd(configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *configPath
			if path == "" {
				path = config.FileName + ".yaml"
			}
			if err := config.Default().WriteFile(path, force); err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), styles.RenderSuccess(fmt.Sprintf("wrote %s", path)))
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			source := cfg.Source
			if source == "" {
				source = "defaults and environment"
			}
			_ = cliWriteLine(w, styles.Theme.Muted.Render("# "+source))
			return cliWritef(w, "%s", data)
		},
	}
}
