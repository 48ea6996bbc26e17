package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/craftchat/craftchat/engine/chat"
	"github.com/craftchat/craftchat/engine/infra/server"
	"github.com/craftchat/craftchat/engine/llm"
	"github.com/craftchat/craftchat/engine/mcserver"
	"github.com/craftchat/craftchat/engine/probe"
	"github.com/craftchat/craftchat/pkg/config"
	"github.com/craftchat/craftchat/pkg/logger"
)

// ServeCmd starts the web application.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the CraftChat web server",
		RunE:  runServe,
	}

	defaults := config.Default()
	cmd.Flags().String("host", defaults.Server.Host, "Interface to bind the HTTP server to")
	cmd.Flags().Int("port", defaults.Server.Port, "Port to bind the HTTP server to")
	cmd.Flags().String("model", defaults.LLM.Model, "OpenAI chat model")
	cmd.Flags().Duration("probe-timeout", defaults.Probe.DefaultTimeout, "Timeout for standalone status probes")
	cmd.Flags().Duration("chat-probe-timeout", defaults.Probe.ChatTimeout, "Timeout for status probes made during a chat turn")
	cmd.Flags().Bool("seed-defaults", true, "Seed the built-in server list when the registry is empty")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().Bool("log-json", false, "Emit logs as JSON")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, seedDefaults, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logLevel, logJSON, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.Setup(logLevel, logJSON)

	registry := mcserver.NewRegistry()
	if seedDefaults {
		registry.SeedDefaultsIfEmpty(mcserver.DefaultServers())
	}
	if key := config.InitialAPIKey(); key != "" {
		registry.SetAPIKey(key)
		log.Info("Seeded OpenAI API key from environment")
	}

	orchestrator := chat.NewOrchestrator(
		registry,
		probe.NewClient(),
		llm.NewOpenAIFactory(cfg.LLM.Model),
		cfg.Probe.ChatTimeout,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, log, registry, orchestrator)
	log.Info("Starting CraftChat",
		"addr", cfg.Addr(),
		"model", cfg.LLM.Model,
		"servers", registry.Len())
	return srv.Run(ctx)
}

func buildConfig(cmd *cobra.Command) (*config.Config, bool, error) {
	cfg := config.Default()

	var err error
	if cfg.Server.Host, err = cmd.Flags().GetString("host"); err != nil {
		return nil, false, fmt.Errorf("failed to get host flag: %w", err)
	}
	if cfg.Server.Port, err = cmd.Flags().GetInt("port"); err != nil {
		return nil, false, fmt.Errorf("failed to get port flag: %w", err)
	}
	if cfg.LLM.Model, err = cmd.Flags().GetString("model"); err != nil {
		return nil, false, fmt.Errorf("failed to get model flag: %w", err)
	}
	var timeout time.Duration
	if timeout, err = cmd.Flags().GetDuration("probe-timeout"); err != nil {
		return nil, false, fmt.Errorf("failed to get probe-timeout flag: %w", err)
	}
	cfg.Probe.DefaultTimeout = timeout
	if timeout, err = cmd.Flags().GetDuration("chat-probe-timeout"); err != nil {
		return nil, false, fmt.Errorf("failed to get chat-probe-timeout flag: %w", err)
	}
	cfg.Probe.ChatTimeout = timeout
	seedDefaults, err := cmd.Flags().GetBool("seed-defaults")
	if err != nil {
		return nil, false, fmt.Errorf("failed to get seed-defaults flag: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return cfg, seedDefaults, nil
}
