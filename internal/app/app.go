package app

import (
	"context"
	"fmt"

	"github.com/lifelinkhq/lifelink/internal/api"
	"github.com/lifelinkhq/lifelink/internal/config"
	"github.com/lifelinkhq/lifelink/internal/prefs"
	"github.com/lifelinkhq/lifelink/internal/ui"
)

// Options configure the console.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/lifelink/prefs.toml
}

// Run boots the console until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The config file wins when it sets a page size; otherwise the persisted
	// preference applies (prefs always carry a usable value).
	userPrefs := prefs.Load(opts.PrefsPath)
	if cfg.PageSize == 0 {
		cfg.PageSize = userPrefs.PageSize
	}

	client, err := api.NewClient(cfg.APIURL, cfg.APIToken)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	appCtx := NewContext(ctx, cfg, client)
	defer appCtx.Shutdown()

	// Populate the first tab and the dashboard counters before the UI
	// starts; failures show up as toasts once the UI attaches.
	if len(appCtx.Resources) > 0 {
		_ = appCtx.Resources[0].Refresh(ctx)
	}
	go appCtx.LoadStats(ctx)

	return ui.Run(ui.Options{
		Context:   ctx,
		Resources: appCtx.Resources,
		Notify:    appCtx.Notify,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}
