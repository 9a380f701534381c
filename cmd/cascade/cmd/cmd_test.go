package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/cascade/pkg/errors"
)

const buttonSheet = `
version: v1.0.0
styles:
  screen: { text_color: "#333333" }
  button:
    bg_color: "#ffffff"
    bg_opa: 255
    radius: 4
    transition: { props: [bg_color], duration: 100ms }
  button_pressed: { bg_color: "#000000", transform_width: 2 }
bindings:
  - { style: screen }
  - { style: button, class: button }
  - { style: button_pressed, class: button, state: pressed }
tree:
  name: screen
  children:
    - { name: ok, class: button }
`

// workdir switches to an empty directory holding the button sheet.
func workdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "button.yaml")
	require.NoError(t, os.WriteFile(path, []byte(buttonSheet), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestProps(t *testing.T) {
	workdir(t)

	out, err := run(t, "props")
	require.NoError(t, err)
	assert.Contains(t, out, "bg_color")
	assert.Contains(t, out, "#ffffff")
	assert.Contains(t, out, "text_font")
	assert.Contains(t, out, "inherit,layout")

	out, err = run(t, "props", "pad_")
	require.NoError(t, err)
	assert.Contains(t, out, "pad_left")
	assert.NotContains(t, out, "radius")
}

func TestResolve(t *testing.T) {
	sheet := workdir(t)

	out, err := run(t, "resolve", "--sheet", sheet, "--node", "ok", "bg_color", "radius", "text_color")
	require.NoError(t, err)
	assert.Contains(t, out, "screen/ok main in default")
	assert.Contains(t, out, "#ffffff")
	assert.Contains(t, out, "#333333", "inherited from the screen")
	assert.NotContains(t, out, "bg_opa")

	out, err = run(t, "resolve", "-s", sheet, "-n", "ok", "--state", "pressed", "bg_color")
	require.NoError(t, err)
	assert.Contains(t, out, "in pressed")
	assert.Contains(t, out, "#000000")

	out, err = run(t, "resolve", "-s", sheet, "--set")
	require.NoError(t, err)
	assert.Contains(t, out, "text_color")
	assert.NotContains(t, out, "bg_color")
}

func TestResolve_Errors(t *testing.T) {
	sheet := workdir(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing sheet flag", []string{"resolve"}},
		{"unknown property", []string{"resolve", "-s", sheet, "glow"}},
		{"unknown node", []string{"resolve", "-s", sheet, "-n", "nope"}},
		{"unknown part", []string{"resolve", "-s", sheet, "-p", "wheel"}},
		{"unknown state", []string{"resolve", "-s", sheet, "--state", "sleepy"}},
		{"missing file", []string{"resolve", "-s", "missing.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}

	_, err := run(t, "resolve", "-s", "missing.yaml")
	assert.True(t, errors.IsKind(err, errors.KindSheet))
}

func TestFlags(t *testing.T) {
	sheet := workdir(t)

	out, err := run(t, "flags", "-s", sheet, "-n", "ok")
	require.NoError(t, err)
	assert.Contains(t, out, "screen/ok in default")
	assert.Contains(t, out, "radius_zero")
	assert.Contains(t, out, "bg_opa_cover")

	out, err = run(t, "flags", "-s", sheet, "-n", "ok", "--state", "pressed")
	require.NoError(t, err)
	assert.Contains(t, out, "in pressed")
}

func TestCompare(t *testing.T) {
	sheet := workdir(t)

	tests := []struct {
		from, to string
		want     string
	}{
		{"default", "pressed", "draw_pad"},
		{"pressed", "default", "draw_pad"},
		{"default", "checked", "same"},
	}
	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			out, err := run(t, "compare", "-s", sheet, "-n", "ok", tt.from, tt.to)
			require.NoError(t, err)
			assert.Contains(t, out, ": "+tt.want)
		})
	}

	_, err := run(t, "compare", "-s", sheet, "default")
	assert.Error(t, err)
}

func TestAnimate(t *testing.T) {
	sheet := workdir(t)

	out, err := run(t, "animate", "-s", sheet, "-n", "ok", "--to", "pressed", "--steps", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "default -> pressed: draw_pad")
	assert.Contains(t, out, "main bg_color")
	assert.Contains(t, out, "50ms")
	assert.Contains(t, out, "100ms")
	assert.Contains(t, out, "#000000")

	out, err = run(t, "animate", "-s", sheet, "-n", "ok", "--to", "pressed", "--prop", "transform_width")
	require.NoError(t, err)
	assert.Contains(t, out, "main transform_width")
	assert.Contains(t, out, "200ms", "timed by the default config")

	out, err = run(t, "animate", "-s", sheet, "-n", "ok", "--to", "checked")
	require.NoError(t, err)
	assert.Contains(t, out, "no transitions")

	_, err = run(t, "animate", "-s", sheet, "--to", "pressed", "--steps", "0")
	assert.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	sheet := workdir(t)
	cfg := filepath.Join(t.TempDir(), "cascade.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("engine: { refresh: false }\n"), 0o644))

	out, err := run(t, "--config", cfg, "animate", "-s", sheet, "-n", "ok", "--to", "pressed")
	require.NoError(t, err)
	assert.Contains(t, out, "no transitions")

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "props")
	assert.True(t, errors.IsKind(err, errors.KindConfig))
}

func TestVersion(t *testing.T) {
	workdir(t)
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
