package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-tui-controls/pkg/config"
	"github.com/grindlemire/go-tui-controls/pkg/dropdown"
	"github.com/grindlemire/go-tui-controls/pkg/input"
)

func loadDemo(t *testing.T) *Screen {
	t.Helper()
	s, err := LoadScreen(filepath.Join("testdata", "screen.yaml"))
	require.NoError(t, err)
	return s
}

func TestLoadScreen(t *testing.T) {
	s := loadDemo(t)

	assert.Equal(t, 40, s.Width())
	assert.Equal(t, 14, s.Height())

	color, ok := s.Dropdown("color")
	require.True(t, ok)
	assert.Equal(t, dropdown.ListDisplay, color.Mode())
	assert.Equal(t, "Red", color.Text())

	fruit, ok := s.Dropdown("fruit")
	require.True(t, ok)
	assert.Equal(t, dropdown.ComboEditable, fruit.Mode())
	assert.Equal(t, 12, fruit.DisplayWidth())
	assert.Equal(t, 2, fruit.PopupMaxHeight())

	assert.Same(t, color, s.Focused(), "first dropdown should hold focus")
}

func TestReplayDemo(t *testing.T) {
	s := loadDemo(t)
	f, err := os.Open(filepath.Join("testdata", "demo.script"))
	require.NoError(t, err)
	defer f.Close()

	events, err := ParseScript(f)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, replay(&out, s, events, false))

	want := []string{
		"color 2 Blue",
		"typed ",
		"typed K",
		"typed Ki",
		"typed Kiw",
		"typed Kiwi",
		"fruit -1 Kiwi",
	}
	assert.Equal(t, want, s.Log())

	color, _ := s.Dropdown("color")
	fruit, _ := s.Dropdown("fruit")
	assert.Equal(t, 2, color.Selected())
	assert.False(t, color.IsOpen())
	assert.Equal(t, -1, fruit.Selected())
	assert.Same(t, fruit, s.Focused())

	frame, logText, found := strings.Cut(out.String(), "--- log ---\n")
	require.True(t, found)
	assert.Contains(t, frame, "Blue")
	assert.Contains(t, frame, "Kiwi")
	assert.Contains(t, frame, "fruit -1 Kiwi", "log panel should show the newest line")
	assert.Equal(t, strings.Join(want, "\n")+"\n", logText)
}

func TestScreen_PopupOverlapsSibling(t *testing.T) {
	src, err := config.FromMap(map[string]any{
		"width":  30,
		"height": 12,
		"widgets": []any{
			map[string]any{"name": "top", "y": 0, "width": 10, "item_list": []any{"a", "b", "c"}},
			map[string]any{"name": "below", "y": 4, "width": 10, "item_list": []any{"x", "y"}},
		},
	})
	require.NoError(t, err)
	s, err := BuildScreen(src)
	require.NoError(t, err)

	top, _ := s.Dropdown("top")
	below, _ := s.Dropdown("below")

	down, _ := input.Click(11, 1)
	require.True(t, s.Dispatch(down))
	require.True(t, top.IsOpen())

	// Row "b" of the open popup sits on top of the second control.
	down, _ = input.Click(2, 5)
	require.True(t, s.Dispatch(down))
	assert.Equal(t, 1, top.Selected())
	assert.False(t, top.IsOpen())
	assert.False(t, below.IsOpen(), "covered control must not see the click")
}

func TestBuildScreen_Errors(t *testing.T) {
	type tc struct {
		widgets []any
		wantErr error
	}

	tests := map[string]tc{
		"unknown kind": {
			widgets: []any{map[string]any{"kind": "slider"}},
			wantErr: ErrUnknownKind,
		},
		"unknown dropdown type": {
			widgets: []any{map[string]any{"type": "radio"}},
			wantErr: dropdown.ErrUnknownType,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			src, err := config.FromMap(map[string]any{"widgets": tt.widgets})
			require.NoError(t, err)

			_, err = BuildScreen(src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestBuildScreen_Empty(t *testing.T) {
	src, err := config.FromMap(map[string]any{})
	require.NoError(t, err)

	s, err := BuildScreen(src)
	require.NoError(t, err)
	assert.Equal(t, defaultScreenWidth, s.Width())
	assert.Nil(t, s.Focused())
	assert.False(t, s.Dispatch(input.KeyEvent{Key: input.KeyEnter}))
}

func TestRootCmd_Render(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"render", "--config", filepath.Join("testdata", "screen.yaml")})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Red")
	assert.Contains(t, out.String(), "Apple")
}

func TestRootCmd_ReplayNeedsScript(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"replay", "--config", filepath.Join("testdata", "screen.yaml")})

	assert.Error(t, cmd.Execute())
}
