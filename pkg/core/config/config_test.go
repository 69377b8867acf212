package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sserror "github.com/msto63/smallstring/foundation/core/error"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %s, want 5m0s", result)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "smallstring" {
		t.Errorf("General.Name = %q", cfg.General.Name)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Pool.MinClass != 32 || cfg.Pool.MaxClass != 64<<10 {
		t.Errorf("Pool = %+v", cfg.Pool)
	}
	if cfg.Inspect.Threshold != 24 {
		t.Errorf("Inspect.Threshold = %d", cfg.Inspect.Threshold)
	}
	if cfg.Stats.Count != 10000 || cfg.Stats.Timeout.Duration != 30*time.Second {
		t.Errorf("Stats = %+v", cfg.Stats)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "sso.toml", `
[general]
name = "bench"

[log]
level = "debug"
format = "json"

[pool]
min_class = 64
max_class = 4096

[inspect]
threshold = 8
texts = ["a", "abcdefghij"]

[stats]
count = 500
timeout = "2s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "bench" || cfg.General.Environment != "development" {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Pool.MinClass != 64 || cfg.Pool.MaxClass != 4096 {
		t.Errorf("Pool = %+v", cfg.Pool)
	}
	if cfg.Inspect.Threshold != 8 || len(cfg.Inspect.Texts) != 2 {
		t.Errorf("Inspect = %+v", cfg.Inspect)
	}
	if cfg.Stats.Count != 500 || cfg.Stats.Timeout.Duration != 2*time.Second {
		t.Errorf("Stats = %+v", cfg.Stats)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "sso.yaml", `
log:
  level: warn
  format: logfmt
pool:
  min_class: 16
inspect:
  threshold: 25
  texts:
    - abcd
    - abcdef
stats:
  timeout: 1m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "warn" || cfg.Log.Format != "logfmt" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Pool.MinClass != 16 || cfg.Pool.MaxClass != 64<<10 {
		t.Errorf("Pool = %+v", cfg.Pool)
	}
	if cfg.Inspect.Threshold != 25 || cfg.Inspect.Texts[1] != "abcdef" {
		t.Errorf("Inspect = %+v", cfg.Inspect)
	}
	if cfg.Stats.Timeout.Duration != time.Minute {
		t.Errorf("Stats.Timeout = %v", cfg.Stats.Timeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "sso.toml", `
[log]
level = "debug"

[inspect]
threshold = 8
`)

	t.Setenv("SSO_LOG_LEVEL", "error")
	t.Setenv("SSO_LOG_FORMAT", "console")
	t.Setenv("SSO_POOL_MAX_CLASS", "1024")
	t.Setenv("SSO_THRESHOLD", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "error" || cfg.Log.Format != "console" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Pool.MaxClass != 1024 {
		t.Errorf("Pool.MaxClass = %d", cfg.Pool.MaxClass)
	}
	if cfg.Inspect.Threshold != 2 {
		t.Errorf("Inspect.Threshold = %d", cfg.Inspect.Threshold)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		env      map[string]string
		wantCode sserror.Code
	}{
		{
			name:     "invalid toml",
			file:     "bad.toml",
			content:  "[log\nlevel = ",
			wantCode: sserror.CodeConfigError,
		},
		{
			name:     "invalid yaml",
			file:     "bad.yaml",
			content:  "log: [unclosed",
			wantCode: sserror.CodeConfigError,
		},
		{
			name:     "unsupported threshold",
			file:     "sso.toml",
			content:  "[inspect]\nthreshold = 7\n",
			wantCode: sserror.CodeInvalidConfig,
		},
		{
			name:     "unknown level",
			file:     "sso.toml",
			content:  "[log]\nlevel = \"loud\"\n",
			wantCode: sserror.CodeInvalidConfig,
		},
		{
			name:     "max below min",
			file:     "sso.toml",
			content:  "[pool]\nmin_class = 128\nmax_class = 64\n",
			wantCode: sserror.CodeInvalidConfig,
		},
		{
			name:     "non-numeric env",
			file:     "sso.toml",
			content:  "",
			env:      map[string]string{"SSO_THRESHOLD": "many"},
			wantCode: sserror.CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeFile(t, tt.file, tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !sserror.HasCode(err, tt.wantCode) {
				t.Errorf("Load() error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !sserror.HasCode(err, sserror.CodeNotFound) {
		t.Errorf("Load() error = %v, want CodeNotFound", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeFile(t, "custom.yml", "inspect:\n  threshold: 64\n")
		t.Setenv("SSO_CONFIG", path)

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Inspect.Threshold != 64 {
			t.Errorf("Inspect.Threshold = %d, want 64", cfg.Inspect.Threshold)
		}
	})

	t.Run("defaults without file", func(t *testing.T) {
		t.Setenv("SSO_CONFIG", "")
		t.Setenv("HOME", t.TempDir())
		testChdir(t, t.TempDir())
		t.Setenv("SSO_STATS_COUNT", "7")

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Stats.Count != 7 || cfg.Inspect.Threshold != 24 {
			t.Errorf("cfg = %+v", cfg)
		}
	})
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"sso.toml", FormatTOML},
		{"sso.yaml", FormatYAML},
		{"SSO.YML", FormatYAML},
		{"sso.conf", FormatTOML},
	}

	for _, tt := range tests {
		if got := detectFormat(tt.path); got != tt.want {
			t.Errorf("detectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	cfg.Pool.MinClass = 0
	cfg.Inspect.Threshold = 7

	err := cfg.Validate()
	if !sserror.HasCode(err, sserror.CodeInvalidConfig) || !sserror.HasCode(err, sserror.CodeValidationFailed) {
		t.Fatalf("Validate() error = %v", err)
	}
	for _, want := range []string{"log.level: expected one of", "pool.min_class: expected at least 1, got 0", "inspect.threshold: expected one of 2, 4, 8"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %q", err, want)
		}
	}
}

// testChdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
