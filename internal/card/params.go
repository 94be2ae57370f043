package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/albapepper/readme-svg/internal/theme"
)

// ErrMissingParam matches every ParamError.
var ErrMissingParam = errors.New("missing required parameter")

// ParamError reports a required query parameter that was absent or blank.
type ParamError struct {
	Param string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s parameter is required", cases.Title(language.English).String(e.Param))
}

func (e *ParamError) Is(target error) bool {
	return target == ErrMissingParam
}

func required(params map[string]string, key string) (string, error) {
	v := strings.TrimSpace(params[key])
	if v == "" {
		return "", &ParamError{Param: key}
	}
	return v, nil
}

func stringParam(params map[string]string, key, fallback string) string {
	if v := strings.TrimSpace(params[key]); v != "" {
		return v
	}
	return fallback
}

// intParam parses a positive integer, falling back on blank or bad input,
// then clamps it to [lo, hi] when hi > 0.
func intParam(params map[string]string, key string, fallback, lo, hi int) int {
	n, err := strconv.Atoi(strings.TrimSpace(params[key]))
	if err != nil || n <= 0 {
		n = fallback
	}
	if hi > 0 {
		n = max(lo, min(n, hi))
	}
	return n
}

func boolParam(params map[string]string, key string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(params[key]))
	if err != nil {
		return fallback
	}
	return b
}

// secondsParam reads a positive number of seconds ("8", "1.5").
func secondsParam(params map[string]string, key string, fallback time.Duration) time.Duration {
	f, err := strconv.ParseFloat(strings.TrimSpace(params[key]), 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return time.Duration(f * float64(time.Second))
}

// millisParam reads a positive number of milliseconds.
func millisParam(params map[string]string, key string, fallback time.Duration) time.Duration {
	n, err := strconv.Atoi(strings.TrimSpace(params[key]))
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Millisecond
}

// colorParam normalizes a hex colour. Anything unparseable yields "", which
// renderers read as "use the palette accent".
func colorParam(params map[string]string, key string) string {
	c, ok := theme.ParseHex(params[key])
	if !ok {
		return ""
	}
	return c
}

// SplitLines splits a ';'-separated list, trimming entries and dropping
// blanks.
func SplitLines(s string) []string {
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// fingerprint joins name=value pairs in the order given.
func fingerprint(kind string, kv ...string) string {
	var b strings.Builder
	b.WriteString(kind)
	for i := 0; i+1 < len(kv); i += 2 {
		b.WriteByte(':')
		b.WriteString(kv[i])
		b.WriteByte('=')
		b.WriteString(kv[i+1])
	}
	return b.String()
}
