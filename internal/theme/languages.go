package theme

import "strings"

// languageColors follows GitHub linguist colours for the languages that
// show up most often in profile summaries.
var languageColors = map[string]string{
	"javascript":       "#f1e05a",
	"typescript":       "#3178c6",
	"python":           "#3572a5",
	"java":             "#b07219",
	"go":               "#00add8",
	"rust":             "#dea584",
	"c":                "#555555",
	"c++":              "#f34b7d",
	"c#":               "#178600",
	"php":              "#4f5d95",
	"ruby":             "#701516",
	"swift":            "#f05138",
	"kotlin":           "#a97bff",
	"dart":             "#00b4ab",
	"scala":            "#c22d40",
	"shell":            "#89e051",
	"html":             "#e34c26",
	"css":              "#563d7c",
	"scss":             "#c6538c",
	"vue":              "#41b883",
	"svelte":           "#ff3e00",
	"lua":              "#000080",
	"r":                "#198ce7",
	"elixir":           "#6e4a7e",
	"haskell":          "#5e5086",
	"clojure":          "#db5855",
	"zig":              "#ec915c",
	"nix":              "#7e7eff",
	"dockerfile":       "#384d54",
	"jupyter notebook": "#da5b0b",
	"objective-c":      "#438eff",
	"perl":             "#0298c3",
	"powershell":       "#012456",
	"solidity":         "#aa6746",
	"hcl":              "#844fba",
}

// LanguageColor returns the display colour for a language, falling back to
// the palette's neutral grey for unknown names.
func LanguageColor(name string, p Palette) string {
	if c, ok := languageColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return p.Neutral
}
