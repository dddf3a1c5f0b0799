package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corbin/geoquiz/internal/config"
	"github.com/corbin/geoquiz/internal/logger"
)

var (
	v       = config.NewViper()
	cfgFile string
	cfg     *config.Config
	log     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "geoquiz",
	Short: "True/false geography quiz",
	Long:  "GeoQuiz: a terminal true/false geography quiz that remembers where you left off.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Path to config file (default ./config.yaml)")
	flags.String("store", "", "Snapshot store: SQLite path, redis:// or postgres:// URL (overrides GEOQUIZ_STORE)")
	flags.String("lang", "", "Language for questions and messages, e.g. en or es (overrides GEOQUIZ_LANG)")
	flags.String("questions", "", "Path to a YAML question bank (overrides GEOQUIZ_QUESTIONS)")

	for _, name := range []string{"store", "lang", "questions"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the logger.
func setup() error {
	c, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	l, err := logger.New(c)
	if err != nil {
		return err
	}
	cfg, log = c, l
	return nil
}
