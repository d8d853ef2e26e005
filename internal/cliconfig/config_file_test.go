package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Input:       "plan.txt",
				Decoder:     "literal",
				LogLevel:    "debug",
				Debounce:    "250ms",
				CheckClosed: &trueVal,
				Dump:        &trueVal,
				Watch:       &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				InputPath:   "plan.txt",
				Decoder:     "literal",
				LogLevel:    "debug",
				Debounce:    250 * time.Millisecond,
				CheckClosed: true,
				Dump:        true,
				Watch:       true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Input:   "from-file.txt",
				Decoder: "literal",
			},
			changed: map[string]bool{"input": true},
			initial: Config{
				InputPath: "from-flag.txt",
				Decoder:   "hex",
			},
			expected: Config{
				InputPath: "from-flag.txt", // unchanged because flag was set
				Decoder:   "literal",
			},
		},
		{
			name: "explicit false overrides",
			fileConfig: FileConfig{
				Watch: &falseVal,
			},
			changed:  map[string]bool{},
			initial:  Config{Watch: true},
			expected: Config{Watch: false},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name: "invalid duration",
			fileConfig: FileConfig{
				Debounce: "soon",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
input = "/tmp/plan.txt"
decoder = "literal"
debounce = "1s"
check_closed = true
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Input != "/tmp/plan.txt" {
		t.Errorf("Input = %v, want /tmp/plan.txt", fc.Input)
	}
	if fc.Decoder != "literal" {
		t.Errorf("Decoder = %v, want literal", fc.Decoder)
	}
	if fc.Debounce != "1s" {
		t.Errorf("Debounce = %v, want 1s", fc.Debounce)
	}
	if fc.CheckClosed == nil || !*fc.CheckClosed {
		t.Errorf("CheckClosed = %v, want true", fc.CheckClosed)
	}
	if fc.Watch != nil {
		t.Errorf("Watch = %v, want nil", fc.Watch)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	if err := os.WriteFile(configPath, []byte("input = \"x\"\nthis is not valid toml\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.HasSuffix(path, filepath.Join(".lagoon", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %v, should end in .lagoon/config.toml", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
