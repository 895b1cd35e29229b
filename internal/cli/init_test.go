package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kcsbuilding/guttergauge/internal/config"
)

func TestRunInit(t *testing.T) {
	tests := []struct {
		name        string
		existing    string
		force       bool
		wantErr     bool
		wantContent string
	}{
		{name: "creates config", wantContent: "version = 1"},
		{name: "existing file without force", existing: "catalog {}", wantErr: true, wantContent: "catalog {}"},
		{name: "existing file with force", existing: "catalog {}", force: true, wantContent: "version = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			path := filepath.Join(dir, config.FileName)

			if tt.existing != "" {
				if err := os.WriteFile(path, []byte(tt.existing), 0644); err != nil {
					t.Fatalf("failed to create existing config: %v", err)
				}
			}

			forceFlag = tt.force
			defer func() { forceFlag = false }()

			var err error
			captureStdout(t, func() { err = runInit(nil, nil) })
			if (err != nil) != tt.wantErr {
				t.Fatalf("runInit() error = %v, wantErr %v", err, tt.wantErr)
			}

			content, readErr := os.ReadFile(path)
			if readErr != nil {
				t.Fatalf("failed to read config: %v", readErr)
			}
			if !strings.Contains(string(content), tt.wantContent) {
				t.Errorf("config content should contain %q", tt.wantContent)
			}
		})
	}
}

func TestRunInit_ConfigLoads(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("GUTTERGAUGE_TEAM_HASH", "")
	t.Setenv("GUTTERGAUGE_ADMIN_HASH", "")

	forceFlag = false
	captureStdout(t, func() {
		if err := runInit(nil, nil); err != nil {
			t.Errorf("runInit returned error: %v", err)
		}
	})

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Search.Region != "QLD" || cfg.Output.Format != "text" {
		t.Errorf("unexpected defaults: region=%q format=%q", cfg.Search.Region, cfg.Output.Format)
	}
}
