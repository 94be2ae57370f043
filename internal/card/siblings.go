package card

import (
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/readme-svg/internal/theme"
)

// WaveConfig is a banner title over layered animated waves.
type WaveConfig struct {
	Text     string
	Subtitle string
	Theme    string
	Color    string
	Waves    int
	Speed    time.Duration
	Width    int
	Height   int
}

const (
	DefaultWaveWidth  = 1200
	DefaultWaveHeight = 200
	DefaultWaves      = 3
	MaxWaves          = 5
	DefaultWaveSpeed  = 8 * time.Second
)

// ParseWaveParams requires text; everything else has a default. Like every
// sibling parser it returns the sized config alongside a missing-parameter
// error.
func ParseWaveParams(params map[string]string) (WaveConfig, error) {
	text, err := required(params, "text")
	return WaveConfig{
		Text:     text,
		Subtitle: strings.TrimSpace(params["subtitle"]),
		Theme:    stringParam(params, "theme", DefaultTheme),
		Color:    colorParam(params, "color"),
		Waves:    intParam(params, "waves", DefaultWaves, 1, MaxWaves),
		Speed:    secondsParam(params, "speed", DefaultWaveSpeed),
		Width:    intParam(params, "width", DefaultWaveWidth, 0, 0),
		Height:   intParam(params, "height", DefaultWaveHeight, 0, 0),
	}, err
}

func (c WaveConfig) CacheKey() string {
	return fingerprint("wave",
		"text", c.Text, "sub", c.Subtitle, "t", theme.Canonical(c.Theme), "c", c.Color,
		"n", strconv.Itoa(c.Waves), "s", c.Speed.String(),
		"w", strconv.Itoa(c.Width), "h", strconv.Itoa(c.Height))
}

// TypingConfig types each line out in turn behind a blinking cursor.
type TypingConfig struct {
	Lines    []string
	FontSize int
	Color    string
	Duration time.Duration
	Pause    time.Duration
	Center   bool
	Theme    string
	Width    int
	Height   int
}

const (
	DefaultTypingFontSize = 24
	DefaultTypingDuration = 3000 * time.Millisecond
	DefaultTypingPause    = 1000 * time.Millisecond
	DefaultTypingWidth    = 600
	DefaultTypingHeight   = 60
	maxTypingFontSize     = 96
)

// ParseTypingParams requires at least one non-blank line.
func ParseTypingParams(params map[string]string) (TypingConfig, error) {
	lines := SplitLines(params["lines"])
	var err error
	if len(lines) == 0 {
		err = &ParamError{Param: "lines"}
	}
	return TypingConfig{
		Lines:    lines,
		FontSize: intParam(params, "font_size", DefaultTypingFontSize, 8, maxTypingFontSize),
		Color:    colorParam(params, "color"),
		Duration: millisParam(params, "duration", DefaultTypingDuration),
		Pause:    millisParam(params, "pause", DefaultTypingPause),
		Center:   boolParam(params, "center", false),
		Theme:    stringParam(params, "theme", DefaultTheme),
		Width:    intParam(params, "width", DefaultTypingWidth, 0, 0),
		Height:   intParam(params, "height", DefaultTypingHeight, 0, 0),
	}, err
}

func (c TypingConfig) CacheKey() string {
	return fingerprint("typing",
		"l", strings.Join(c.Lines, ";"), "fs", strconv.Itoa(c.FontSize), "c", c.Color,
		"d", c.Duration.String(), "p", c.Pause.String(), "ctr", strconv.FormatBool(c.Center),
		"t", theme.Canonical(c.Theme), "w", strconv.Itoa(c.Width), "h", strconv.Itoa(c.Height))
}

// TerminalConfig prints commands after a prompt inside window chrome.
// Outputs pair with Commands by index; a blank output prints nothing.
type TerminalConfig struct {
	Title    string
	Prompt   string
	Commands []string
	Outputs  []string
	Theme    string
	Width    int
	// Height is zero when the caller left it to fit the content.
	Height int
}

const (
	DefaultTerminalTitle  = "bash"
	DefaultTerminalPrompt = "$"
	DefaultTerminalWidth  = 700
	DefaultTerminalHeight = 400
)

// ParseTerminalParams requires at least one command.
func ParseTerminalParams(params map[string]string) (TerminalConfig, error) {
	commands := SplitLines(params["commands"])
	var err error
	if len(commands) == 0 {
		err = &ParamError{Param: "commands"}
	}
	var outputs []string
	if raw := params["output"]; strings.TrimSpace(raw) != "" {
		for _, o := range strings.Split(raw, ";") {
			outputs = append(outputs, strings.TrimSpace(o))
		}
	}
	return TerminalConfig{
		Title:    stringParam(params, "title", DefaultTerminalTitle),
		Prompt:   stringParam(params, "prompt", DefaultTerminalPrompt),
		Commands: commands,
		Outputs:  outputs,
		Theme:    stringParam(params, "theme", DefaultTheme),
		Width:    intParam(params, "width", DefaultTerminalWidth, 0, 0),
		Height:   intParam(params, "height", 0, 0, 0),
	}, err
}

// MinHeight is the requested height, or the default when left to fit.
func (c TerminalConfig) MinHeight() int {
	if c.Height <= 0 {
		return DefaultTerminalHeight
	}
	return c.Height
}

// Output returns the output paired with command i, or "".
func (c TerminalConfig) Output(i int) string {
	if i < len(c.Outputs) {
		return c.Outputs[i]
	}
	return ""
}

func (c TerminalConfig) CacheKey() string {
	return fingerprint("terminal",
		"title", c.Title, "p", c.Prompt, "cmd", strings.Join(c.Commands, ";"),
		"out", strings.Join(c.Outputs, ";"), "t", theme.Canonical(c.Theme),
		"w", strconv.Itoa(c.Width), "h", strconv.Itoa(c.Height))
}

// LoaderType picks the loader animation.
type LoaderType string

const (
	LoaderSpinner LoaderType = "spinner"
	LoaderDots    LoaderType = "dots"
	LoaderBars    LoaderType = "bars"
	LoaderPulse   LoaderType = "pulse"
)

// LoaderTypes lists the accepted loader types.
var LoaderTypes = []LoaderType{LoaderSpinner, LoaderDots, LoaderBars, LoaderPulse}

// ParseLoaderType is case-insensitive; unknown values become spinner.
func ParseLoaderType(s string) LoaderType {
	t := LoaderType(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range LoaderTypes {
		if t == k {
			return t
		}
	}
	return LoaderSpinner
}

// LoaderConfig is a small looping loading indicator.
type LoaderConfig struct {
	Type  LoaderType
	Color string
	Size  int
	Speed time.Duration
	Theme string
}

const (
	DefaultLoaderSize  = 64
	DefaultLoaderSpeed = 1200 * time.Millisecond
	maxLoaderSize      = 512
)

// ParseLoaderParams never fails; every field has a default.
func ParseLoaderParams(params map[string]string) LoaderConfig {
	return LoaderConfig{
		Type:  ParseLoaderType(params["type"]),
		Color: colorParam(params, "color"),
		Size:  intParam(params, "size", DefaultLoaderSize, 16, maxLoaderSize),
		Speed: secondsParam(params, "speed", DefaultLoaderSpeed),
		Theme: stringParam(params, "theme", DefaultTheme),
	}
}

func (c LoaderConfig) CacheKey() string {
	return fingerprint("loader",
		"type", string(c.Type), "c", c.Color, "s", strconv.Itoa(c.Size),
		"v", c.Speed.String(), "t", theme.Canonical(c.Theme))
}
