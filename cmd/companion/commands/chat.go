// ABOUTME: Chat command runs a terminal REPL against the same pipeline
// ABOUTME: One session per invocation, /reset and /quit as local commands
package commands

import (
	"bufio"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/companion/internal/config"
	"github.com/harper/companion/internal/memory"
)

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the companion in the terminal",
		Long: `Chat with the companion in the terminal.

Runs the same turn pipeline as the web server against a single local
session. Type /reset to forget the conversation and /quit to leave.`,
		RunE: runChat,
	}

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sessionID := memory.NewID()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, "Chatting with the companion. /reset to forget, /quit to leave.")
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "/quit", "/exit":
			return nil
		case "/reset":
			pipeline.Sessions().Reset(sessionID)
			fmt.Fprintln(out, "(conversation forgotten)")
			continue
		}

		reply, err := pipeline.Respond(cmd.Context(), sessionID, line)
		if err != nil {
			fmt.Fprintf(out, "(turn failed: %v)\n", err)
			continue
		}
		fmt.Fprintf(out, "her> %s\n", strings.TrimSpace(reply.Text))
	}
	return scanner.Err()
}
