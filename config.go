package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/BurntSushi/xdg"
	"github.com/pkg/errors"
)

const (
	signatureEnv  = "HYPRLAND_INSTANCE_SIGNATURE"
	runtimeDirEnv = "XDG_RUNTIME_DIR"
	configEnv     = "HyprMonitorNotifyConfig"

	legacySocketDir = "/tmp"
	socketName      = ".socket2.sock"
)

var errNoSignature = errors.New(signatureEnv + " not set")

// Env is the compositor state read from the environment at startup.
type Env struct {
	Signature  string
	RuntimeDir string
}

func envConfig(getenv func(string) string) (Env, error) {
	env := Env{
		Signature:  getenv(signatureEnv),
		RuntimeDir: getenv(runtimeDirEnv),
	}
	if env.Signature == "" {
		return env, errNoSignature
	}
	return env, nil
}

// socketPath prefers the socket under XDG_RUNTIME_DIR, falling back to the
// /tmp location older Hyprland releases used.
func socketPath(env Env, exists func(string) bool) string {
	if env.RuntimeDir != "" {
		p := filepath.Join(env.RuntimeDir, "hypr", env.Signature, socketName)
		if exists(p) {
			return p
		}
	}
	return filepath.Join(legacySocketDir, "hypr", env.Signature, socketName)
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// Config is the optional config file. Nothing in it is required.
type Config struct {
	// Directory relative script arguments are resolved in (absolute paths
	// ignore this)
	ScriptPath string
	// logrus level name (debug shows every compositor event)
	LogLevel string
	// Quiet all normal output
	Quiet bool
}

func defaultConfig() *Config {
	return &Config{LogLevel: "info"}
}

// configPath returns "" when no config file exists. The override is a file
// path and is returned as is, so a missing one gets reported by loadConfig.
func configPath(getenv func(string) string) string {
	if override := getenv(configEnv); override != "" {
		return override
	}
	paths := xdg.Paths{XDGSuffix: "hypr-monitor-notify"}
	path, err := paths.ConfigFile("config.toml")
	if err != nil {
		return ""
	}
	return path
}

func loadConfig(path string) (*Config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	if _, err = toml.Decode(string(bs), conf); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return conf, nil
}

func getConfig(getenv func(string) string) (*Config, error) {
	return loadConfig(configPath(getenv))
}

// resolveScript expands a script argument against ScriptPath.
func (c *Config) resolveScript(script string) string {
	if script == "" || c.ScriptPath == "" || filepath.IsAbs(script) {
		return script
	}
	return filepath.Join(os.ExpandEnv(c.ScriptPath), script)
}
