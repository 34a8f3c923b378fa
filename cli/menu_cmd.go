package cli

import (
	"github.com/spf13/cobra"
)

func newMenuCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, get())
		},
	}
}

func runMenu(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	menu := NewMenu(a.svc, cmd.InOrStdin(), out, a.writeTable(out))
	return menu.Run(cmd.Context())
}
