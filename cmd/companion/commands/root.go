// ABOUTME: Root CLI command with global flags shared by all subcommands
// ABOUTME: Wires serve, chat, mcp, and version under one cobra tree
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

const banner = `
 ██████  ██████  ███    ███ ██████   █████  ███    ██ ██  ██████  ███    ██
██      ██    ██ ████  ████ ██   ██ ██   ██ ████   ██ ██ ██    ██ ████   ██
██      ██    ██ ██ ████ ██ ██████  ███████ ██ ██  ██ ██ ██    ██ ██ ██  ██
██      ██    ██ ██  ██  ██ ██      ██   ██ ██  ██ ██ ██ ██    ██ ██  ██ ██
 ██████  ██████  ██      ██ ██      ██   ██ ██   ████ ██  ██████  ██   ████
`

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companion",
		Short: "Persona voice-chat service",
		Long: banner + `
Companion is a small web application that forwards user text to a hosted
completion API with a fixed persona prompt, keeps a sliding window of
conversation history per session, and optionally speaks replies through a
hosted text-to-speech service.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
