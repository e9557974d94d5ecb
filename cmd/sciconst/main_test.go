package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoglobals // test binary path is set in TestMain
var testBinaryPath string

// TestMain builds the CLI binary once for the entire package and reuses it.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "sciconst-test-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1) //nolint:gocritic // Mkdir failed, nothing to cleanup
	}
	defer os.RemoveAll(dir)

	bin := filepath.Join(dir, "sciconst-test")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build test binary: %v\nOutput: %s\n", err, string(out))
		os.Exit(1) //nolint:gocritic // Binary failed, nothing to cleanup
	}
	testBinaryPath = bin

	code := m.Run()
	os.Exit(code)
}

func buildTestBinary(t *testing.T) string {
	t.Helper()
	if testBinaryPath == "" {
		t.Fatalf("test binary not built")
	}
	return testBinaryPath
}

// newCmd runs the binary against an isolated home so no real config or custom file is touched.
func newCmd(binary, home string, args ...string) *exec.Cmd {
	cmd := exec.Command(binary, args...)
	env := make([]string, 0, len(os.Environ())+1)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "SCICONST_") || strings.HasPrefix(kv, "HOME=") {
			continue
		}
		env = append(env, kv)
	}
	cmd.Env = append(env, "HOME="+home)
	return cmd
}

func defaultCustomPath(home string) string {
	return filepath.Join(home, ".config", "sciconst", "custom.json")
}

func TestCLI_HelpOutput(t *testing.T) {
	binary := buildTestBinary(t)
	home := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "root help",
			args:     []string{"--help"},
			contains: []string{"sciconst", "mathematics constants", "list", "custom", "experimental", "--output", "--custom-file", "--tui"},
		},
		{
			name:     "list help",
			args:     []string{"list", "--help"},
			contains: []string{"--category", "--search"},
		},
		{
			name:     "custom help",
			args:     []string{"custom", "--help"},
			contains: []string{"add", "import", "export", "flat list"},
		},
		{
			name:     "experimental help",
			args:     []string{"experimental", "--help"},
			contains: []string{"convert", "language", "graph"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := newCmd(binary, home, tt.args...).CombinedOutput()
			require.NoError(t, err)
			for _, expected := range tt.contains {
				assert.Contains(t, string(output), expected)
			}
		})
	}
}

func TestCLI_Version(t *testing.T) {
	binary := buildTestBinary(t)
	output, err := newCmd(binary, t.TempDir(), "--version").CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(output), "sciconst dev")
	assert.Contains(t, string(output), "commit: none")
}

func TestCLI_Categories(t *testing.T) {
	binary := buildTestBinary(t)
	output, err := newCmd(binary, t.TempDir(), "categories").Output()
	require.NoError(t, err)
	assert.Equal(t, "Physics\nChemistry\nMathematics\n", string(output))
}

func TestCLI_ListSearch(t *testing.T) {
	binary := buildTestBinary(t)
	home := t.TempDir()

	output, err := newCmd(binary, home, "list", "--category", "Physics", "--search", "grav", "-o", "json").Output()
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(output, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Gravitational Constant", rows[0]["name"])
	assert.Equal(t, "6.67430 × 10^-11 m^3 kg^-1 s^-2", rows[0]["value"])

	// Default category is the first one.
	output, err = newCmd(binary, home, "list", "-o", "text").Output()
	require.NoError(t, err)
	assert.Contains(t, string(output), "Speed of Light: 299,792,458 m/s")
	assert.Len(t, strings.Split(strings.TrimSpace(string(output)), "\n"), 14)

	// Table output renders an upper-cased header.
	output, err = newCmd(binary, home, "list", "-c", "Chemistry", "-s", "AVOGADRO").Output()
	require.NoError(t, err)
	assert.Contains(t, string(output), "CONSTANT")
	assert.Contains(t, string(output), "Avogadro's Number")
}

func TestCLI_ListUnknownCategory(t *testing.T) {
	binary := buildTestBinary(t)
	output, err := newCmd(binary, t.TempDir(), "list", "--category", "Biology").CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "Biology")
}

func TestCLI_Show(t *testing.T) {
	binary := buildTestBinary(t)
	home := t.TempDir()

	output, err := newCmd(binary, home, "show", "Mathematics", "Pi (π)", "-o", "yaml").Output()
	require.NoError(t, err)
	assert.Contains(t, string(output), "category: Mathematics")
	assert.Contains(t, string(output), "3.14159265358979323846")

	// Names are scoped by category.
	_, err = newCmd(binary, home, "show", "Chemistry", "Pi (π)").Output()
	require.Error(t, err)
}

func TestCLI_ExportText(t *testing.T) {
	binary := buildTestBinary(t)
	home := t.TempDir()
	out := filepath.Join(home, "exports", "constants.txt")

	_, err := newCmd(binary, home, "export", out).Output()
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "Physics:\n  Speed of Light: 299,792,458 m/s\n"))
	assert.Contains(t, text, "\n\nChemistry:\n")
	assert.True(t, strings.HasSuffix(text, "\n\n"))

	stdout, err := newCmd(binary, home, "export", "-").Output()
	require.NoError(t, err)
	assert.Equal(t, text, string(stdout))
}

func TestCLI_CustomLifecycle(t *testing.T) {
	binary := buildTestBinary(t)
	home := t.TempDir()

	_, err := newCmd(binary, home, "custom", "add", "Hubble Constant", "70 km/s/Mpc", "Rate of cosmic expansion").Output()
	require.NoError(t, err)
	_, err = newCmd(binary, home, "custom", "add", "Answer", "42").Output()
	require.NoError(t, err)
	assert.FileExists(t, defaultCustomPath(home))

	output, err := newCmd(binary, home, "custom", "export", "-").Output()
	require.NoError(t, err)
	assert.Equal(t, `{
  "Hubble Constant": {
    "value": "70 km/s/Mpc",
    "description": "Rate of cosmic expansion"
  },
  "Answer": {
    "value": "42",
    "description": ""
  }
}
`, string(output))

	output, err = newCmd(binary, home, "custom", "show", "Answer", "-o", "json").Output()
	require.NoError(t, err)
	var shown map[string]any
	require.NoError(t, json.Unmarshal(output, &shown))
	assert.Equal(t, "42", shown["value"])
	assert.NotContains(t, shown, "category")

	output, err = newCmd(binary, home, "custom", "list", "--search", "hub", "-o", "text").Output()
	require.NoError(t, err)
	assert.Equal(t, "Hubble Constant: 70 km/s/Mpc\n", string(output))

	// Built-in categories are unaffected.
	output, err = newCmd(binary, home, "categories").Output()
	require.NoError(t, err)
	assert.NotContains(t, string(output), "Hubble")
}

func TestCLI_CustomAddValidation(t *testing.T) {
	binary := buildTestBinary(t)
	home := t.TempDir()

	output, err := newCmd(binary, home, "custom", "add", "  ", "1").CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "name")
	assert.NoFileExists(t, defaultCustomPath(home))

	output, err = newCmd(binary, home, "--require-description", "custom", "add", "x", "1").CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "description")
}

func TestCLI_CustomImport(t *testing.T) {
	binary := buildTestBinary(t)
	home := t.TempDir()

	_, err := newCmd(binary, home, "custom", "add", "Old", "1").Output()
	require.NoError(t, err)

	in := filepath.Join(home, "in.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"b": {"value": "2"}, "a": {"value": "1", "description": "first", "unit": "ignored"}}`), 0o600))

	output, err := newCmd(binary, home, "custom", "import", in).Output()
	require.NoError(t, err)
	assert.Contains(t, string(output), "Imported 2 custom constants")

	output, err = newCmd(binary, home, "custom", "list", "-o", "text").Output()
	require.NoError(t, err)
	assert.Equal(t, "b: 2\na: 1\n", string(output))
}

func TestCLI_CustomImportInvalidKeepsExisting(t *testing.T) {
	binary := buildTestBinary(t)
	home := t.TempDir()

	_, err := newCmd(binary, home, "custom", "add", "Keep", "1").Output()
	require.NoError(t, err)
	before, err := os.ReadFile(defaultCustomPath(home))
	require.NoError(t, err)

	bad := filepath.Join(home, "bad.json")
	for _, payload := range []string{`[1, 2]`, `{"x": {"value": ""}}`, `{"x": "1"}`, `not json`} {
		require.NoError(t, os.WriteFile(bad, []byte(payload), 0o600))
		_, err = newCmd(binary, home, "custom", "import", bad).Output()
		require.Error(t, err, payload)
	}

	after, err := os.ReadFile(defaultCustomPath(home))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	_, err = newCmd(binary, home, "custom", "import", filepath.Join(home, "missing.json")).Output()
	require.Error(t, err)
}

func TestCLI_CorruptCustomFile(t *testing.T) {
	binary := buildTestBinary(t)
	home := t.TempDir()
	path := defaultCustomPath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	// Built-in catalog still works.
	_, err := newCmd(binary, home, "categories").Output()
	require.NoError(t, err)

	// Writing commands refuse to clobber the file.
	_, err = newCmd(binary, home, "custom", "add", "x", "1").Output()
	require.Error(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(data))
}

func TestCLI_ConfigAndEnv(t *testing.T) {
	binary := buildTestBinary(t)
	home := t.TempDir()
	custom := filepath.Join(home, "mine.json")

	cfgPath := filepath.Join(home, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: text\ncustom_file: "+custom+"\n"), 0o600))

	_, err := newCmd(binary, home, "--config", cfgPath, "custom", "add", "k", "1.38").Output()
	require.NoError(t, err)
	assert.FileExists(t, custom)

	output, err := newCmd(binary, home, "--config", cfgPath, "custom", "list").Output()
	require.NoError(t, err)
	assert.Equal(t, "k: 1.38\n", string(output))

	cmd := newCmd(binary, home, "--config", cfgPath, "categories")
	cmd.Env = append(cmd.Env, "SCICONST_OUTPUT=json")
	output, err = cmd.Output()
	require.NoError(t, err)
	var cats []string
	require.NoError(t, json.Unmarshal(output, &cats))
	assert.Equal(t, []string{"Physics", "Chemistry", "Mathematics"}, cats)

	output, err = newCmd(binary, home, "-o", "xml", "categories").CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "invalid configuration")
}

func TestCLI_ExperimentalNotImplemented(t *testing.T) {
	binary := buildTestBinary(t)
	home := t.TempDir()

	tests := [][]string{
		{"experimental", "convert", "Physics", "Speed of Light", "km/h"},
		{"experimental", "language", "fr"},
		{"experimental", "graph", "Physics", "Speed of Light"},
	}
	for _, args := range tests {
		t.Run(args[1], func(t *testing.T) {
			output, err := newCmd(binary, home, args...).Output()
			require.NoError(t, err)
			assert.Contains(t, string(output), "not implemented")
		})
	}
}
