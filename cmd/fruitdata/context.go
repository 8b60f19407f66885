package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"fruitdata/internal/catalog"
	"fruitdata/internal/config"
	"fruitdata/internal/logging"
)

type commandContext struct {
	fileFlag     *string
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(fileFlag, configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		fileFlag:     fileFlag,
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		level := cfg.Logging.Level
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = strings.TrimSpace(*c.logLevelFlag)
		}
		logger, err := logging.New(logging.Options{
			Level:  level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// cataloguePath resolves the catalogue file: the -f/--file flag wins over
// the configured path, which itself defaults to fruits.json.
func (c *commandContext) cataloguePath() (string, error) {
	if c.fileFlag != nil && strings.TrimSpace(*c.fileFlag) != "" {
		return config.ExpandPath(strings.TrimSpace(*c.fileFlag))
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Catalogue.Path, nil
}

func (c *commandContext) openStore() (*catalog.Store, error) {
	path, err := c.cataloguePath()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(path, logger), nil
}

// loadCatalogue loads the catalogue from disk. When the file is missing or
// unreadable or its content does not parse, it warns on errOut and
// substitutes the built-in defaults in memory; nothing is written until a
// later add or remove saves.
func (c *commandContext) loadCatalogue(errOut io.Writer) ([]catalog.Record, *catalog.Store, error) {
	store, err := c.openStore()
	if err != nil {
		return nil, nil, err
	}

	records, err := store.Load()
	if err != nil {
		if !catalog.Recoverable(err) {
			return nil, nil, err
		}
		fmt.Fprintf(errOut, "Warning: could not load catalogue from %s, starting from the built-in defaults.\n", store.Path())
		if logger, logErr := c.ensureLogger(); logErr == nil {
			logger.Warn("catalogue load failed, using defaults",
				logging.String("path", store.Path()),
				logging.Error(err))
		}
		records = catalog.Default()
	}

	return records, store, nil
}
