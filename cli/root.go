package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd builds the craftchat command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "craftchat",
		Short: "Minecraft server status dashboard with LLM chat",
	}

	root.AddCommand(
		ServeCmd(),
	)

	return root
}
