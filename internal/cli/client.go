package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alterxyz/gotelegraph/internal/configloader"
	"github.com/alterxyz/gotelegraph/internal/logging"
	"github.com/alterxyz/gotelegraph/pkg/telegraph"
)

// buildClient resolves configuration and constructs the Telegraph client a
// command will use. Flag values take precedence over config files and
// environment variables.
func buildClient(ctx context.Context, flags *rootFlags) (*telegraph.Client, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
		CLIConfig: &configloader.Config{
			AuthorName: flags.authorName,
			AuthorURL:  flags.authorURL,
			BaseURL:    flags.baseURL,
			TokenPath:  flags.tokenPath,
		},
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}
	cfg := loadResult.Config

	logger := logging.Default()
	if cfg.LogLevel != "" && !flags.debug {
		logging.SetLevel(cfg.LogLevel)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFile, loadResult.LoadedFrom)
	}

	opts := []telegraph.Option{
		telegraph.WithLogger(logger),
		telegraph.WithShortName(cfg.ShortName),
		telegraph.WithAuthorName(cfg.AuthorName),
		telegraph.WithTokenStore(telegraph.NewTokenStore(cfg.TokenPath)),
	}
	if cfg.AuthorURL != "" {
		opts = append(opts, telegraph.WithAuthorURL(cfg.AuthorURL))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, telegraph.WithBaseURL(cfg.BaseURL))
	}
	if flags.token != "" {
		opts = append(opts, telegraph.WithToken(flags.token))
	}

	return telegraph.New(opts...), nil
}
