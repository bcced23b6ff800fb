package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

type Config struct {
	Listen string `toml:"listen"`
	Radix  int    `toml:"radix"`
	Strict bool   `toml:"strict"`
	Debug  bool   `toml:"debug"`
}

func defaultConfig() Config {
	return Config{
		Listen: ":8081",
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}
	return cfg, nil
}

//command line flags win over the config file
func (cfg *Config) override(c *cli.Context) {
	if c.IsSet("listen") {
		cfg.Listen = c.String("listen")
	}
	if c.IsSet("radix") {
		cfg.Radix = c.Int("radix")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
}
