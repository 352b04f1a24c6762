package app

import (
	"go.uber.org/zap"

	"jupbuy/internal/domain"
	"jupbuy/internal/keys"
	"jupbuy/internal/services/swap"
)

// App is the per-invocation context shared by commands.
type App struct {
	Config Config
	Log    *zap.Logger
	Wire   *Wire
}

// New builds an App from a loaded Config.
func New(cfg Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{Config: cfg, Log: log, Wire: NewWire(cfg, log)}
}

// OutputMint is the configured token to buy.
func (a *App) OutputMint() domain.Mint { return domain.Mint(a.Config.OutputMint) }

// Key loads the wallet from the configured key file.
func (a *App) Key() (domain.Keypair, error) {
	key, err := keys.Load(a.Config.KeyFile)
	if err != nil {
		return nil, err
	}
	return key, nil
}

// Swap returns the pipeline signing with key.
func (a *App) Swap(key domain.Keypair) *swap.Service {
	return a.Wire.Swapper(key, a.Log.Named("swap"))
}
