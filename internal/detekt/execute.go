package detekt

import (
	"context"

	"go.uber.org/zap"
)

// Entrypoints are the two ways into the external analyzer.
type Entrypoints interface {
	// Run performs a standard analysis with the given arguments.
	Run(ctx context.Context, args []string) error
	// ExportConfig writes the analyzer's default configuration.
	ExportConfig(ctx context.Context, args []string) error
}

// Execute builds the argument list for inv and hands it to the matching entry
// point. Whatever the analyzer reports, findings included, is returned as is.
func Execute(ctx context.Context, inv Invocation, ep Entrypoints) error {
	if inv.Skip {
		zap.L().Info("skipping detekt")
		return nil
	}

	args := BuildArgs(inv)
	zap.L().Info("detekt arguments", zap.Strings("args", args))

	if inv.GenerateConfig {
		return ep.ExportConfig(ctx, ExportArgs(inv))
	}
	return ep.Run(ctx, args)
}

// ExportArgs is the argument list for a configuration export: the export flag
// plus the target config path when one is set.
func ExportArgs(inv Invocation) []string {
	args := []string{FlagGenerateConfig}
	if inv.Config != "" {
		args = append(args, FlagConfig, inv.Config)
	}
	return args
}
