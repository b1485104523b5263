package cmd

import (
	"testing"
)

func TestApplyMetricsEnv(t *testing.T) {
	tests := []struct {
		name        string
		config      MetricsConfig
		envEnabled  string
		envAddr     string
		wantEnabled bool
		wantAddr    string
	}{
		{
			name:        "flags win over empty environment",
			config:      MetricsConfig{Enabled: true, Addr: ":9999"},
			wantEnabled: true,
			wantAddr:    ":9999",
		},
		{
			name:        "environment enables metrics",
			config:      MetricsConfig{Enabled: false, Addr: ":9090"},
			envEnabled:  "true",
			wantEnabled: true,
			wantAddr:    ":9090",
		},
		{
			name:        "environment overrides default addr",
			config:      MetricsConfig{Enabled: true, Addr: ":9090"},
			envAddr:     ":9191",
			wantEnabled: true,
			wantAddr:    ":9191",
		},
		{
			name:        "environment does not override explicit addr",
			config:      MetricsConfig{Enabled: true, Addr: ":7070"},
			envAddr:     ":9191",
			wantEnabled: true,
			wantAddr:    ":7070",
		},
		{
			name:        "empty addr falls back to environment",
			config:      MetricsConfig{Enabled: true, Addr: ""},
			envAddr:     ":9191",
			wantEnabled: true,
			wantAddr:    ":9191",
		},
		{
			name:        "non-true enabled value is ignored",
			config:      MetricsConfig{Enabled: false, Addr: ":9090"},
			envEnabled:  "yes",
			wantEnabled: false,
			wantAddr:    ":9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("METRICS_ENABLED", tt.envEnabled)
			t.Setenv("METRICS_ADDR", tt.envAddr)

			config := tt.config
			applyMetricsEnv(&config)

			if config.Enabled != tt.wantEnabled {
				t.Errorf("applyMetricsEnv() Enabled = %v, want %v", config.Enabled, tt.wantEnabled)
			}
			if config.Addr != tt.wantAddr {
				t.Errorf("applyMetricsEnv() Addr = %q, want %q", config.Addr, tt.wantAddr)
			}
		})
	}
}

func TestRunServe_IncompleteConfig(t *testing.T) {
	// Credentials are required before the transport switch, so an
	// incomplete environment must fail fast.
	t.Setenv("CPANEL_USERNAME", "")
	t.Setenv("CPANEL_HOSTNAME", "")
	t.Setenv("CPANEL_API_TOKEN", "")

	err := runServe("carrier-pigeon", false, ":8080", false, MetricsConfig{})
	if err == nil {
		t.Fatal("runServe() expected error for incomplete configuration, got nil")
	}
}

func TestNewServeCmd_Flags(t *testing.T) {
	cmd := newServeCmd()

	for _, flag := range []string{"debug", "transport", "http-addr", "yolo", "metrics-enabled", "metrics-addr"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("serve command is missing flag %q", flag)
		}
	}

	if got := cmd.Flags().Lookup("transport").DefValue; got != "stdio" {
		t.Errorf("transport default = %q, want %q", got, "stdio")
	}
	if got := cmd.Flags().Lookup("metrics-addr").DefValue; got != ":9090" {
		t.Errorf("metrics-addr default = %q, want %q", got, ":9090")
	}
}
