package tokenvoting

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/tokenvoting/internal/config"
)

// app holds what the subcommands share once the root flags are parsed.
type app struct {
	envFile      string
	settingsFile string

	cfg    *config.Config
	logger *zap.SugaredLogger
}

func BuildRootCmd() *cobra.Command {
	a := &app{}

	cmd := cobra.Command{
		Use:          "tokenvoting",
		Short:        "Token weighted voting for DAO proposals",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}

			return a.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "File with TOKENVOTING_ variables (default .env)")
	cmd.PersistentFlags().StringVar(&a.settingsFile, "settings", "", "Settings file (yaml, json or toml)")
	cmd.PersistentFlags().String("log-level", "", "Log level, overrides TOKENVOTING_LOG_LEVEL")
	cmd.PersistentFlags().String("rpc-url", "", "JSON-RPC endpoint, overrides TOKENVOTING_RPC_URL")

	cmd.AddCommand(buildSimulateCmd(a))
	cmd.AddCommand(buildTallyCmd(a))
	cmd.AddCommand(buildVotesCmd(a))
	cmd.AddCommand(buildVersionCmd())

	return &cmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile, a.settingsFile, cmd.Flags())
	if err != nil {
		return err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.Sampling = nil

	logger, err := zcfg.Build()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.Sugar()

	return nil
}
