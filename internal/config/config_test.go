package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveTasksPath(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	writeGlobalConfig(t, "tasks_file: /from/config.json\n")

	t.Setenv(EnvTasksFile, "/from/env.json")
	if got := ResolveTasksPath("/from/flag.json"); got != "/from/flag.json" {
		t.Errorf("with flag: got %q, want /from/flag.json", got)
	}
	if got := ResolveTasksPath(""); got != "/from/env.json" {
		t.Errorf("with env: got %q, want /from/env.json", got)
	}

	t.Setenv(EnvTasksFile, "")
	if got := ResolveTasksPath(""); got != "/from/config.json" {
		t.Errorf("with config: got %q, want /from/config.json", got)
	}

	ResetGlobalConfigCache()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if got := ResolveTasksPath(""); got != DefaultTasksFile {
		t.Errorf("default: got %q, want %q", got, DefaultTasksFile)
	}
}

func TestResolveLogLevel(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	writeGlobalConfig(t, "log_level: info\n")

	t.Setenv(EnvLogLevel, "error")
	if got := ResolveLogLevel("debug"); got != "debug" {
		t.Errorf("with flag: got %q, want debug", got)
	}
	if got := ResolveLogLevel(""); got != "error" {
		t.Errorf("with env: got %q, want error", got)
	}

	t.Setenv(EnvLogLevel, "")
	if got := ResolveLogLevel(""); got != "info" {
		t.Errorf("with config: got %q, want info", got)
	}

	ResetGlobalConfigCache()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if got := ResolveLogLevel(""); got != DefaultLogLevel {
		t.Errorf("default: got %q, want %q", got, DefaultLogLevel)
	}
}

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"", false},
		{"debug", false},
		{"WARN", false},
		{"error", false},
		{"verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := ValidateLogLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLogLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTasksFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty", "", false},
		{"new file in existing dir", filepath.Join(tmpDir, "tasks.json"), false},
		{"missing dir", filepath.Join(tmpDir, "nope", "tasks.json"), true},
		{"directory", tmpDir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTasksFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTasksFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"tasks.json", "tasks.json"},
		{"/abs/tasks.json", "/abs/tasks.json"},
		{"~/tasks.json", filepath.Join(home, "tasks.json")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
