package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(ioutil.Discard)
}

func TestConfigLoad(t *testing.T) {
	conf, err := loadConfig("./example-config.toml")
	if err != nil {
		t.Fatal(err)
	}
	if conf.ScriptPath != "${HOME}/bin/hypr.d" {
		t.Error("Bad ScriptPath value: ", conf.ScriptPath)
	}
	if conf.LogLevel != "debug" {
		t.Error("Bad LogLevel value: ", conf.LogLevel)
	}
	if conf.Quiet {
		t.Error("Quiet set when it shouldn't have been.")
	}
}

func TestConfigMissingIsDefault(t *testing.T) {
	conf, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if conf.LogLevel != "info" || conf.ScriptPath != "" || conf.Quiet {
		t.Error("Not the default config: ", conf)
	}
}

func TestConfigBad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("ScriptPath = [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestResolveScript(t *testing.T) {
	os.Setenv("HYPR_NOTIFY_TEST_HOME", "/home/me")
	defer os.Unsetenv("HYPR_NOTIFY_TEST_HOME")
	conf := &Config{ScriptPath: "${HYPR_NOTIFY_TEST_HOME}/bin"}
	cases := map[string]string{
		"added":         "/home/me/bin/added",
		"sub/added":     "/home/me/bin/sub/added",
		"/usr/bin/true": "/usr/bin/true",
		"":              "",
	}
	for in, want := range cases {
		if got := conf.resolveScript(in); got != want {
			t.Error("resolveScript(", in, ") got:", got, "want:", want)
		}
	}
	conf.ScriptPath = ""
	if got := conf.resolveScript("added"); got != "added" {
		t.Error("Script changed without a ScriptPath: ", got)
	}
}

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestEnvConfig(t *testing.T) {
	_, err := envConfig(envFrom(nil))
	if err != errNoSignature {
		t.Error("Missing signature not reported, got: ", err)
	}
	env, err := envConfig(envFrom(map[string]string{
		signatureEnv:  "abc",
		runtimeDirEnv: "/run/user/1000",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if env.Signature != "abc" || env.RuntimeDir != "/run/user/1000" {
		t.Error("Bad env: ", env)
	}
}

func TestSocketPath(t *testing.T) {
	env := Env{Signature: "sig", RuntimeDir: "/run/user/1000"}
	runtimeSock := "/run/user/1000/hypr/sig/.socket2.sock"
	legacySock := "/tmp/hypr/sig/.socket2.sock"

	got := socketPath(env, func(p string) bool { return p == runtimeSock })
	if got != runtimeSock {
		t.Error("runtime dir socket not preferred, got: ", got)
	}
	got = socketPath(env, func(string) bool { return false })
	if got != legacySock {
		t.Error("no fallback to /tmp, got: ", got)
	}
	env.RuntimeDir = ""
	got = socketPath(env, func(string) bool { return true })
	if got != legacySock {
		t.Error("socket without runtime dir, got: ", got)
	}
}

func TestSocketPathOnDisk(t *testing.T) {
	dir := t.TempDir()
	env := Env{Signature: "sig", RuntimeDir: dir}
	if got := socketPath(env, pathExists); got != "/tmp/hypr/sig/.socket2.sock" {
		t.Error("picked a socket that isn't there: ", got)
	}
	sock := filepath.Join(dir, "hypr", "sig", ".socket2.sock")
	if err := os.MkdirAll(filepath.Dir(sock), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sock, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if got := socketPath(env, pathExists); got != sock {
		t.Error("runtime dir socket not chosen, got: ", got)
	}
}

// hermeticXDG keeps the config lookup away from the real user's files.
func hermeticXDG(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	t.Setenv("GOPATH", t.TempDir())
	return home
}

func TestConfigPathOverride(t *testing.T) {
	hermeticXDG(t)
	path := filepath.Join(t.TempDir(), "mine.toml")
	if err := os.WriteFile(path, []byte("ScriptPath = \"/x\"\nLogLevel = \"debug\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	getenv := envFrom(map[string]string{configEnv: path})
	if got := configPath(getenv); got != path {
		t.Error("override not used, got: ", got, " want: ", path)
	}
	conf, err := getConfig(getenv)
	if err != nil {
		t.Fatal(err)
	}
	if conf.ScriptPath != "/x" || conf.LogLevel != "debug" {
		t.Error("override file not loaded: ", conf)
	}
}

func TestConfigPathMissingOverride(t *testing.T) {
	hermeticXDG(t)
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := getConfig(envFrom(map[string]string{configEnv: missing})); err == nil {
		t.Error("missing override file not reported")
	}
}

func TestConfigPathXDG(t *testing.T) {
	home := hermeticXDG(t)
	if got := configPath(envFrom(nil)); got != "" {
		t.Error("found a config that isn't there: ", got)
	}
	path := filepath.Join(home, "hypr-monitor-notify", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("Quiet = true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := configPath(envFrom(nil)); got != path {
		t.Error("XDG config not found, got: ", got, " want: ", path)
	}
}
