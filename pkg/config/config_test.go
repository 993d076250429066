package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `
environment: test
server:
  port: 9090
  read_timeout: 5s
  write_timeout: 5s
  shutdown_timeout: 5s
dashboard:
  pair: BTCUSDT
  history_size: 20
backend:
  base_url: http://localhost:8000
  timeout: 10s
stream:
  url: ws://localhost:8000/ws/market-data
  ping_interval: 30s
  buffer_size: 128
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Dashboard.Pair != "BTCUSDT" || cfg.Dashboard.HistorySize != 20 {
		t.Errorf("dashboard = %+v", cfg.Dashboard)
	}
	if cfg.Stream.PingInterval != 30*time.Second {
		t.Errorf("ping interval = %v", cfg.Stream.PingInterval)
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	cases := map[string]string{
		"no pair": `
environment: test
backend:
  base_url: http://localhost:8000
stream:
  url: ws://localhost:8000/ws/market-data
`,
		"no backend": `
environment: test
dashboard:
  pair: BTCUSDT
stream:
  url: ws://localhost:8000/ws/market-data
`,
		"no stream": `
environment: test
dashboard:
  pair: BTCUSDT
backend:
  base_url: http://localhost:8000
`,
	}

	for name, yaml := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, yaml)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadWithEnv_Overrides(t *testing.T) {
	t.Setenv("PAIR", "ETHUSDT")
	t.Setenv("STREAM_URL", "ws://example:9000/ws")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Dashboard.Pair != "ETHUSDT" {
		t.Errorf("pair = %q, want env override", cfg.Dashboard.Pair)
	}
	if cfg.Stream.URL != "ws://example:9000/ws" {
		t.Errorf("stream url = %q, want env override", cfg.Stream.URL)
	}
}
