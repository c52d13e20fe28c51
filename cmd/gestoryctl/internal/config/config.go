package config

import (
	"context"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/client"
	"github.com/gestory/gestoryctl/pkg/sdk"
)

type contextKey string

const configKey contextKey = "gestoryctl-config"

// GlobalConfig holds shared configuration for all gestoryctl commands.
// This is injected into the cobra command context by the root command's
// PersistentPreRun hook and consumed by all subcommands.
type GlobalConfig struct {
	APIURL         string
	NonInteractive bool
	ClientProvider *client.Provider
}

// InjectConfig adds config to the cobra command context.
// This should be called in the root command's PersistentPreRun.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics.
// This should only be used in command RunE functions where we know
// the config has been injected by the root command.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("gestoryctl: config not found in context - this is a bug in gestoryctl")
	}
	return cfg
}

// SDKClient returns the shared SDK client without a session check. For
// commands that manage the session itself (login, logout, status).
func SDKClient(ctx context.Context) (*sdk.Client, error) {
	return MustFromContext(ctx).ClientProvider.SDKClient(ctx)
}

// AdminClient re-validates the stored session and returns the shared SDK
// client. Every protected command calls this at the start of its RunE.
func AdminClient(ctx context.Context) (*sdk.Client, error) {
	return MustFromContext(ctx).ClientProvider.AdminClient(ctx)
}
