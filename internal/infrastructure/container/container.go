// Package container provides dependency injection for the application.
package container

import (
	"context"
	"log/slog"

	"github.com/reglet-dev/seclog/internal/application/ports"
	"github.com/reglet-dev/seclog/internal/application/services"
	"github.com/reglet-dev/seclog/internal/infrastructure/adapters"
	"github.com/reglet-dev/seclog/internal/infrastructure/output"
	"github.com/reglet-dev/seclog/internal/infrastructure/system"
	"github.com/reglet-dev/seclog/internal/version"
)

// Container holds all application dependencies.
type Container struct {
	systemConfig     ports.SystemConfigProvider
	formatterFactory ports.OutputFormatterFactory
	translator       *services.Translator
	applyFilesUC     *services.ApplyFilesUseCase
	systemCfg        *system.Config
	logger           *slog.Logger
}

// Options configure the container.
// Empty fields fall back to the system config file.
type Options struct {
	Logger            *slog.Logger
	SystemConfigPath  string
	Schema            string
	VersionConstraint string
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	systemConfigAdapter := adapters.NewSystemConfigAdapter()

	systemCfg, err := systemConfigAdapter.LoadConfig(context.TODO(), opts.SystemConfigPath)
	if err != nil {
		opts.Logger.Debug("failed to load system config, using defaults", "error", err)
		systemCfg = system.DefaultConfig()
	}

	// Command-line flags take precedence over the config file
	schema := opts.Schema
	if schema == "" {
		schema = systemCfg.Schema.Strategy
	}
	constraint := opts.VersionConstraint
	if constraint == "" {
		constraint = systemCfg.Schema.VersionConstraint
	}

	translator, err := services.NewTranslator(services.TranslatorOptions{
		Schema:            schema,
		VersionConstraint: constraint,
		Logger:            opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	applyFilesUC := services.NewApplyFilesUseCase(translator, version.Get().Version, opts.Logger)

	return &Container{
		systemConfig:     systemConfigAdapter,
		formatterFactory: output.NewFormatterFactory(),
		translator:       translator,
		applyFilesUC:     applyFilesUC,
		systemCfg:        systemCfg,
		logger:           opts.Logger,
	}, nil
}

// ApplyFilesUseCase returns the apply files use case.
func (c *Container) ApplyFilesUseCase() *services.ApplyFilesUseCase {
	return c.applyFilesUC
}

// Translator returns the configured translator.
func (c *Container) Translator() *services.Translator {
	return c.translator
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() ports.OutputFormatterFactory {
	return c.formatterFactory
}

// SystemConfigProvider returns the system config port.
func (c *Container) SystemConfigProvider() ports.SystemConfigProvider {
	return c.systemConfig
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
