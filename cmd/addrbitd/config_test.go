package main

import (
	"flag"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	f, err := ioutil.TempFile("", "addrbitd*.toml")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	_, err = f.WriteString("listen = \":9000\"\nradix = 16\nstrict = true\n")
	require.NoError(t, err)
	f.Close()

	cfg, err = loadConfig(f.Name())
	require.NoError(t, err)
	assert.Equal(t, Config{Listen: ":9000", Radix: 16, Strict: true}, cfg)

	_, err = loadConfig(f.Name() + ".missing")
	assert.Error(t, err)
}

func TestOverride(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("listen", ":8081", "")
	set.Int("radix", 0, "")
	set.Bool("strict", false, "")
	set.Bool("debug", false, "")
	require.NoError(t, set.Parse([]string{"--radix", "8"}))
	c := cli.NewContext(nil, set, nil)

	cfg := Config{Listen: ":9000", Radix: 16, Strict: true}
	cfg.override(c)
	assert.Equal(t, Config{Listen: ":9000", Radix: 8, Strict: true}, cfg)
}
