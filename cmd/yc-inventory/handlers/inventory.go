// Package handlers implements the business logic behind each CLI command.
package handlers

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	inventory "github.com/inhuman/yc-inventory"
	"github.com/inhuman/yc-inventory/internal/config"
	"github.com/inhuman/yc-inventory/internal/logging"
	"github.com/inhuman/yc-inventory/internal/provider/yandex"
)

// Provider is an inventory source holding a connection.
type Provider interface {
	inventory.Provider
	Close(ctx context.Context) error
}

// ProviderFactory opens a provider for the resolved configuration.
type ProviderFactory func(ctx context.Context, cfg *config.Config) (Provider, error)

var newProvider ProviderFactory = func(ctx context.Context, cfg *config.Config) (Provider, error) {
	return yandex.NewClient(ctx, cfg)
}

// SetProviderFactory replaces the provider factory and returns a func that
// restores the previous one.
func SetProviderFactory(f ProviderFactory) (restore func()) {
	prev := newProvider
	newProvider = f
	return func() { newProvider = prev }
}

// List writes the whole inventory as JSON.
func List(ctx context.Context, out io.Writer) error {
	inv, err := load(ctx)
	if err != nil {
		return err
	}

	data, err := inv.JSON()
	if err != nil {
		return errors.Wrap(err, "marshal inventory")
	}
	return writeLine(out, data)
}

// Host writes the variables of a single host as JSON, or null.
func Host(ctx context.Context, out io.Writer, name string) error {
	inv, err := load(ctx)
	if err != nil {
		return err
	}

	data, err := inv.HostJSON(name)
	if err != nil {
		return errors.Wrapf(err, "marshal host %s", name)
	}
	return writeLine(out, data)
}

// load resolves the configuration, which fails before any network call when
// credentials are missing, and builds the inventory.
func load(ctx context.Context) (*inventory.Inventory, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.LogLevel, os.Stderr)

	p, err := newProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := p.Close(ctx); err != nil {
			log.Printf("[WARN] closing provider: %v", err)
		}
	}()

	return inventory.Run(ctx, p)
}

func writeLine(out io.Writer, data []byte) error {
	if _, err := out.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}
