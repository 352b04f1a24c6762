package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jupbuy/internal/app"
	"jupbuy/internal/logging"
)

var (
	cfgFile  string
	keyFile  string
	rpcURL   string
	logLevel string
	appCtx   *app.App
)

// Execute runs the CLI. Errors have already been printed when it returns.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if appCtx != nil {
		_ = appCtx.Log.Sync()
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "jupbuy",
		Short:        "Buy a token with SOL through Jupiter",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.NewViper(cfgFile)
			if err != nil {
				return err
			}
			bindFlags(cmd, v)

			cfg, err := app.Load(v)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./jupbuy.yaml or ~/.jupbuy/jupbuy.yaml)")
	root.PersistentFlags().StringVar(&keyFile, "key-file", "", "wallet key file (default id.json)")
	root.PersistentFlags().StringVar(&rpcURL, "rpc", "", "Solana RPC URL")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn, error or off")

	root.AddCommand(buyCmd(), quoteCmd(), addressCmd())
	return root
}

// bindFlags lets explicitly set flags override file and environment values.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	for flag, key := range map[string]string{
		"key-file":  "key_file",
		"rpc":       "rpc_url",
		"log-level": "log_level",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			v.Set(key, f.Value.String())
		}
	}
}
