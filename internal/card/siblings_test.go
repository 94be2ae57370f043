package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamErrorMessage(t *testing.T) {
	err := error(&ParamError{Param: "text"})
	assert.Equal(t, "Text parameter is required", err.Error())
	assert.ErrorIs(t, err, ErrMissingParam)
}

func TestParseWaveParams(t *testing.T) {
	_, err := ParseWaveParams(map[string]string{"subtitle": "x"})
	require.ErrorIs(t, err, ErrMissingParam)

	cfg, err := ParseWaveParams(map[string]string{"text": "Hello"})
	require.NoError(t, err)
	assert.Equal(t, WaveConfig{
		Text: "Hello", Theme: "dark", Waves: DefaultWaves, Speed: DefaultWaveSpeed,
		Width: DefaultWaveWidth, Height: DefaultWaveHeight,
	}, cfg)

	cfg, err = ParseWaveParams(map[string]string{
		"text": "Hi", "waves": "12", "speed": "2.5", "color": "F0A", "width": "800",
	})
	require.NoError(t, err)
	assert.Equal(t, MaxWaves, cfg.Waves)
	assert.Equal(t, 2500*time.Millisecond, cfg.Speed)
	assert.Equal(t, "#ff00aa", cfg.Color)
	assert.Equal(t, 800, cfg.Width)
}

func TestParseWaveParamsBadColorFallsBack(t *testing.T) {
	cfg, err := ParseWaveParams(map[string]string{"text": "Hi", "color": "not-a-colour"})
	require.NoError(t, err)
	assert.Empty(t, cfg.Color)
}

func TestParseTypingParams(t *testing.T) {
	_, err := ParseTypingParams(map[string]string{"lines": " ; ;"})
	require.ErrorIs(t, err, ErrMissingParam)
	assert.EqualError(t, err, "Lines parameter is required")

	cfg, err := ParseTypingParams(map[string]string{
		"lines": "Hello;  I build things ;", "duration": "1500", "pause": "abc", "center": "true",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "I build things"}, cfg.Lines)
	assert.Equal(t, 1500*time.Millisecond, cfg.Duration)
	assert.Equal(t, DefaultTypingPause, cfg.Pause)
	assert.True(t, cfg.Center)
	assert.Equal(t, DefaultTypingFontSize, cfg.FontSize)
	assert.Equal(t, DefaultTypingWidth, cfg.Width)
}

func TestParseTerminalParamsPairsOutputByIndex(t *testing.T) {
	cfg, err := ParseTerminalParams(map[string]string{
		"commands": "go version;ls;whoami",
		"output":   "go1.25;;octocat",
	})
	require.NoError(t, err)
	assert.Equal(t, "go1.25", cfg.Output(0))
	assert.Equal(t, "", cfg.Output(1))
	assert.Equal(t, "octocat", cfg.Output(2))
	assert.Equal(t, "", cfg.Output(7))
	assert.Equal(t, DefaultTerminalPrompt, cfg.Prompt)
	assert.Zero(t, cfg.Height)

	assert.Equal(t, DefaultTerminalHeight, cfg.MinHeight())

	cfg, err = ParseTerminalParams(map[string]string{"width": "640", "height": "90"})
	assert.ErrorIs(t, err, ErrMissingParam)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 90, cfg.MinHeight())
}

func TestParseErrorsKeepSize(t *testing.T) {
	w, err := ParseWaveParams(map[string]string{"width": "800"})
	require.ErrorIs(t, err, ErrMissingParam)
	assert.Equal(t, 800, w.Width)
	assert.Equal(t, DefaultWaveHeight, w.Height)

	ty, err := ParseTypingParams(map[string]string{"height": "50"})
	require.ErrorIs(t, err, ErrMissingParam)
	assert.Equal(t, DefaultTypingWidth, ty.Width)
	assert.Equal(t, 50, ty.Height)
}

func TestParseLoaderParams(t *testing.T) {
	cfg := ParseLoaderParams(map[string]string{})
	assert.Equal(t, LoaderSpinner, cfg.Type)
	assert.Equal(t, DefaultLoaderSize, cfg.Size)
	assert.Equal(t, DefaultLoaderSpeed, cfg.Speed)

	cfg = ParseLoaderParams(map[string]string{"type": "BARS", "size": "4", "speed": "0.5"})
	assert.Equal(t, LoaderBars, cfg.Type)
	assert.Equal(t, 16, cfg.Size)
	assert.Equal(t, 500*time.Millisecond, cfg.Speed)

	assert.Equal(t, LoaderSpinner, ParseLoaderType("wobble"))
}

func TestSiblingCacheKeysDiffer(t *testing.T) {
	a := ParseLoaderParams(map[string]string{"type": "dots"})
	b := ParseLoaderParams(map[string]string{"type": "dots", "theme": "auto"})
	c := ParseLoaderParams(map[string]string{"type": "bars"})
	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())

	w, err := ParseWaveParams(map[string]string{"text": "x"})
	require.NoError(t, err)
	assert.NotEqual(t, w.CacheKey(), a.CacheKey())
}
