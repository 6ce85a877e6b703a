package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/nginx-host-manager/internal/adapters/in/cli/ui/components"
	"github.com/bnema/nginx-host-manager/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/nginx-host-manager/internal/domain"
)

// newHostsCmd creates the hosts command group.
func newHostsCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hosts",
		Aliases: []string{"host"},
		Short:   "Manage virtual host configs",
	}

	cmd.AddCommand(
		newHostsListCmd(configPath),
		newHostsCreateCmd(configPath),
		newHostsDeleteCmd(configPath),
		newHostsDeleteAllCmd(configPath),
		newHostsPortCmd(configPath),
		newHostsToggleCmd(configPath, "enable", true),
		newHostsToggleCmd(configPath, "disable", false),
	)
	return cmd
}

func newHostsListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List enabled and disabled hosts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(*configPath, func(svc services) error {
				list, err := svc.Hosts().List(cmd.Context())
				if err != nil {
					return err
				}
				if list.Len() == 0 {
					return cliWriteLine(cmd.OutOrStdout(), styles.Theme.Muted.Render(noSites))
				}
				return cliWriteLine(cmd.OutOrStdout(), components.HostTable(list))
			})
		},
	}
}

func newHostsCreateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "create <host> <port>",
		Short: "Create an enabled host config from the template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInput(args[0], args[1]); err != nil {
				return err
			}
			return withServices(*configPath, func(svc services) error {
				if err := svc.Hosts().Create(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				return cliWriteLine(cmd.OutOrStdout(), styles.RenderSuccess(fmt.Sprintf("host %s created on port %s", args[0], args[1])))
			})
		},
	}
}

func newHostsDeleteCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <host>",
		Aliases: []string{"rm"},
		Short:   "Delete a host config, enabled or disabled",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(*configPath, func(svc services) error {
				if err := svc.Hosts().Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				return cliWriteLine(cmd.OutOrStdout(), styles.RenderSuccess(fmt.Sprintf("host %s deleted", args[0])))
			})
		},
	}
}

func newHostsDeleteAllCmd(configPath *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every host config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(*configPath, func(svc services) error {
				res, err := svc.Hosts().DeleteAll(cmd.Context(), yes)
				if err != nil {
					return err
				}
				hint := ""
				if !yes {
					hint = "pass --yes to confirm"
				}
				writeDeleteAllResult(cmd.OutOrStdout(), res, hint)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the deletion")

	return cmd
}

func newHostsPortCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "port <host> <port>",
		Short: "Recreate a host config with a new port (the host ends up enabled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInput(args[0], args[1]); err != nil {
				return err
			}
			return withServices(*configPath, func(svc services) error {
				if err := svc.Hosts().ChangePort(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				return cliWriteLine(cmd.OutOrStdout(), styles.RenderSuccess(fmt.Sprintf("host %s now points to port %s", args[0], args[1])))
			})
		},
	}
}

func newHostsToggleCmd(configPath *string, use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <host>",
		Short: strings.ToUpper(use[:1]) + use[1:] + " a host config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(*configPath, func(svc services) error {
				if err := svc.Hosts().SetEnabled(cmd.Context(), args[0], enabled); err != nil {
					return err
				}
				return cliWriteLine(cmd.OutOrStdout(), styles.RenderSuccess(fmt.Sprintf("host %s %sd", args[0], use)))
			})
		},
	}
}

// validateHostName rejects names that cannot be a config file name.
func validateHostName(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return fmt.Errorf("%w: host name is required", domain.ErrInvalidHost)
	case strings.ContainsAny(name, `/\ `):
		return fmt.Errorf("%w: host name %q contains a path separator or space", domain.ErrInvalidHost, name)
	case strings.HasSuffix(name, domain.EnabledSuffix) || strings.HasSuffix(name, domain.DisabledSuffix):
		return fmt.Errorf("%w: give the host name without the config suffix", domain.ErrInvalidHost)
	}
	return nil
}

// validatePort accepts a TCP port number.
func validatePort(port string) error {
	n, err := strconv.Atoi(strings.TrimSpace(port))
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%w: port must be a number between 1 and 65535, got %q", domain.ErrInvalidHost, port)
	}
	return nil
}

func validateInput(name, port string) error {
	if err := validateHostName(name); err != nil {
		return err
	}
	return validatePort(port)
}
