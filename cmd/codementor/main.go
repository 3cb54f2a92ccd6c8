package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hamzemohamed32/codementor/internal/profile"
	"github.com/hamzemohamed32/codementor/plugin/ai"
	"github.com/hamzemohamed32/codementor/server"
	"github.com/hamzemohamed32/codementor/internal/observability"
	"github.com/hamzemohamed32/codementor/store"
	"github.com/hamzemohamed32/codementor/store/db"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "codementor",
	Short: "CodeMentor AI backend server",
	Long:  `CodeMentor AI is a project workspace with role-based AI assistance: projects get an automatic AI kickoff (requirements, architecture, task backlog) and a per-project chat with selectable expert roles.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		instanceProfile := &profile.Profile{
			Mode:    viper.GetString("mode"),
			Addr:    viper.GetString("addr"),
			Port:    viper.GetInt("port"),
			Data:    viper.GetString("data"),
			Driver:  viper.GetString("driver"),
			DSN:     viper.GetString("dsn"),
			Version: version,
		}
		instanceProfile.FromEnv()
		if err := instanceProfile.Validate(); err != nil {
			return err
		}

		observability.Init(instanceProfile.Mode)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		dbDriver, err := db.NewDBDriver(instanceProfile)
		if err != nil {
			return fmt.Errorf("failed to create db driver: %w", err)
		}
		st := store.New(dbDriver, instanceProfile)
		if err := st.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		llmConfig := ai.NewLLMConfigFromProfile(instanceProfile)
		llmService, err := ai.NewLLMService(llmConfig)
		if err != nil {
			return fmt.Errorf("failed to create llm service: %w", err)
		}
		gateway := ai.NewGateway(llmService)
		if !instanceProfile.IsAIEnabled() {
			slog.Warn("no AI API key configured, completions will degrade to fallback replies")
		}

		s, err := server.NewServer(instanceProfile, st, gateway)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			slog.Info("shutdown signal received")
			s.Shutdown(ctx)
			cancel()
		}()

		return s.Start(ctx)
	},
}

func init() {
	viper.SetEnvPrefix("codementor")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().String("mode", "demo", `mode of server, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of server")
	rootCmd.PersistentFlags().Int("port", 8080, "port of server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", "database driver")
	rootCmd.PersistentFlags().String("dsn", "", "database source name")

	for _, flag := range []string{"mode", "addr", "port", "data", "driver", "dsn"} {
		_ = viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
