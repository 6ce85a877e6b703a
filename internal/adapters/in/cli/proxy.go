package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/nginx-host-manager/internal/boundaries/in"
	"github.com/bnema/nginx-host-manager/internal/domain"
)

// newProxyCmds creates the status and lifecycle commands.
func newProxyCmds(configPath *string) []*cobra.Command {
	status := &cobra.Command{
		Use:   "status",
		Short: "Show the proxy status and the configured hosts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(*configPath, func(svc services) error {
				o, err := svc.Proxy().Overview(cmd.Context())
				if err != nil {
					return err
				}
				writeOverview(cmd.OutOrStdout(), o)
				return nil
			})
		},
	}

	lifecycle := []struct {
		kind  domain.ProxyAction
		short string
		run   proxyAction
	}{
		{kind: domain.ActionStart, short: "Build, create or start the proxy as needed", run: in.ProxyService.Start},
		{kind: domain.ActionStop, short: "Stop the proxy container", run: in.ProxyService.Stop},
		{kind: domain.ActionRestart, short: "Stop then start the proxy", run: in.ProxyService.Restart},
		{kind: domain.ActionReload, short: "Reload the nginx configuration inside the running proxy", run: in.ProxyService.Reload},
	}

	cmds := []*cobra.Command{status}
	for _, l := range lifecycle {
		cmds = append(cmds, &cobra.Command{
			Use:   string(l.kind),
			Short: l.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withServices(*configPath, func(svc services) error {
					res, err := runProxyAction(cmd.Context(), cmd.OutOrStdout(), svc.Proxy(), l.kind, l.run)
					if err != nil {
						return err
					}
					writeActionResult(cmd.OutOrStdout(), res)
					return nil
				})
			},
		})
	}
	return cmds
}
