// Command cardgen renders cards offline and optionally publishes them to
// object storage.
//
// Usage:
//
//	cardgen stats --username octocat --theme light --out stats.svg
//	cardgen stats --username octocat --source demo --publish
//	cardgen wave --text "Hello there" --subtitle "welcome" --waves 4
//	cardgen typing --lines "Hi;I build things" --center
//	cardgen terminal --commands "whoami;uptime" --output "octocat;up 3 days"
//	cardgen loader --type dots --size 96
//	cardgen options
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/albapepper/readme-svg/internal/card"
	"github.com/albapepper/readme-svg/internal/catalog"
	"github.com/albapepper/readme-svg/internal/config"
	"github.com/albapepper/readme-svg/internal/generator"
	"github.com/albapepper/readme-svg/internal/publish"
	"github.com/albapepper/readme-svg/internal/render"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

var newStore = func(cfg config.S3Config) (publish.Store, error) {
	s, err := publish.New(cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "cardgen",
		Short:        "Render README SVG cards from the command line",
		SilenceUsage: true,
	}
	root.SetOut(stdout)

	root.AddCommand(statsCmd())
	root.AddCommand(waveCmd())
	root.AddCommand(typingCmd())
	root.AddCommand(terminalCmd())
	root.AddCommand(loaderCmd())
	root.AddCommand(errorCmd())
	root.AddCommand(optionsCmd())
	return root
}

// --------------------------------------------------------------------------
// card commands
// --------------------------------------------------------------------------

// Card flags carry the query parameter names so a CLI invocation and an
// API URL with the same values render the same bytes.

func statsCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Render a profile stats card",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCard(cmd, "stats", func(ctx context.Context, cfg *config.Config, params map[string]string) ([]byte, string, error) {
				cardCfg, err := card.ParseParams(params)
				if err != nil {
					return nil, "", err
				}
				if source != "" {
					cfg.ProfileSource = source
				}
				gen := generator.New(generator.SourceFor(cfg, logger), logger)
				start := time.Now()
				out, err := gen.Generate(ctx, cardCfg)
				if err != nil {
					return nil, "", err
				}
				logger.Info("Stats card rendered",
					"username", cardCfg.Username, "source", gen.Source(),
					"duration", time.Since(start).Round(time.Millisecond))
				return out, cardCfg.Username, nil
			})
		},
	}
	f := cmd.Flags()
	f.String("username", "", "GitHub username (required)")
	f.String("metrics", "", "Comma-separated metric keys")
	f.String("theme", "", "Colour theme (dark, light, auto)")
	f.String("animation", "", "Reveal animation (countUp, slideIn, pulse)")
	f.String("width", "", "Canvas width")
	f.String("height", "", "Canvas height")
	f.String("showAvatar", "", "Set to false to hide the avatar")
	f.StringVar(&source, "source", "", "Profile source override (github, demo)")
	addOutputFlags(cmd)
	return cmd
}

func waveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wave",
		Short: "Render a wave banner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCard(cmd, "wave", func(ctx context.Context, cfg *config.Config, params map[string]string) ([]byte, string, error) {
				waveCfg, err := card.ParseWaveParams(params)
				if err != nil {
					return nil, "", err
				}
				out, err := generator.New(nil, logger).Wave(waveCfg)
				return out, waveCfg.Text, err
			})
		},
	}
	f := cmd.Flags()
	f.String("text", "", "Banner title (required)")
	f.String("subtitle", "", "Line under the title")
	f.String("theme", "", "Colour theme")
	f.String("color", "", "Wave colour as hex")
	f.String("waves", "", "Wave layers, 1 to 5")
	f.String("speed", "", "Seconds per scroll cycle")
	f.String("width", "", "Canvas width")
	f.String("height", "", "Canvas height")
	addOutputFlags(cmd)
	return cmd
}

func typingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "typing",
		Short: "Render a typing animation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCard(cmd, "typing", func(ctx context.Context, cfg *config.Config, params map[string]string) ([]byte, string, error) {
				typingCfg, err := card.ParseTypingParams(params)
				if err != nil {
					return nil, "", err
				}
				out, err := generator.New(nil, logger).Typing(typingCfg)
				return out, "", err
			})
		},
	}
	f := cmd.Flags()
	f.String("lines", "", "Semicolon-separated lines (required)")
	f.String("font_size", "", "Font size in pixels")
	f.String("color", "", "Text colour as hex")
	f.String("duration", "", "Milliseconds to type one line")
	f.String("pause", "", "Milliseconds to hold a typed line")
	f.String("center", "", "Centre lines horizontally (true/false)")
	f.Lookup("center").NoOptDefVal = "true"
	f.String("theme", "", "Colour theme")
	f.String("width", "", "Canvas width")
	f.String("height", "", "Canvas height")
	addOutputFlags(cmd)
	return cmd
}

func terminalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terminal",
		Short: "Render a terminal window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCard(cmd, "terminal", func(ctx context.Context, cfg *config.Config, params map[string]string) ([]byte, string, error) {
				termCfg, err := card.ParseTerminalParams(params)
				if err != nil {
					return nil, "", err
				}
				out, err := generator.New(nil, logger).Terminal(termCfg)
				return out, termCfg.Title, err
			})
		},
	}
	f := cmd.Flags()
	f.String("commands", "", "Semicolon-separated commands (required)")
	f.String("output", "", "Semicolon-separated outputs, paired by position")
	f.String("title", "", "Window title")
	f.String("prompt", "", "Prompt symbol")
	f.String("theme", "", "Colour theme")
	f.String("width", "", "Canvas width")
	f.String("height", "", "Minimum canvas height")
	addOutputFlags(cmd)
	return cmd
}

func loaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loader",
		Short: "Render a loading indicator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCard(cmd, "loader", func(ctx context.Context, cfg *config.Config, params map[string]string) ([]byte, string, error) {
				loaderCfg := card.ParseLoaderParams(params)
				out, err := generator.New(nil, logger).Loader(loaderCfg)
				return out, string(loaderCfg.Type), err
			})
		},
	}
	f := cmd.Flags()
	f.String("type", "", "Loader style (spinner, dots, bars, pulse)")
	f.String("color", "", "Colour as hex")
	f.String("size", "", "Width and height in pixels")
	f.String("speed", "", "Seconds per cycle")
	f.String("theme", "", "Colour theme")
	addOutputFlags(cmd)
	return cmd
}

func errorCmd() *cobra.Command {
	var message string
	var width, height int
	cmd := &cobra.Command{
		Use:   "error",
		Short: "Render an error card",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCard(cmd, "error", func(ctx context.Context, cfg *config.Config, params map[string]string) ([]byte, string, error) {
				return render.Error(message, width, height), "", nil
			})
		},
	}
	cmd.Flags().StringVar(&message, "message", "Something went wrong", "Message shown on the card")
	cmd.Flags().IntVar(&width, "width", 0, "Canvas width")
	cmd.Flags().IntVar(&height, "height", 0, "Canvas height")
	addOutputFlags(cmd)
	return cmd
}

// --------------------------------------------------------------------------
// options command
// --------------------------------------------------------------------------

func optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List metrics, themes, animations and loader types",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(map[string]any{
				"metrics":    cat.Metrics,
				"themes":     catalog.Themes(),
				"animations": catalog.Animations(),
				"loaders":    catalog.Loaders(),
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// renderFunc renders one card from params. owner names the object key
// prefix when publishing; empty falls back to the card kind.
type renderFunc func(ctx context.Context, cfg *config.Config, params map[string]string) (out []byte, owner string, err error)

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("out", "-", "Output file; - writes to stdout")
	cmd.Flags().Bool("publish", false, "Upload to object storage and print the public URL")
}

// cardParams collects the flags the user set, keyed by flag name.
func cardParams(flags *pflag.FlagSet) map[string]string {
	params := make(map[string]string)
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "out", "publish", "source", "message":
			return
		}
		params[f.Name] = f.Value.String()
	})
	return params
}

// runCard handles config loading, context cancellation and output.
func runCard(cmd *cobra.Command, kind string, render renderFunc) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	out, owner, err := render(ctx, cfg, cardParams(cmd.Flags()))
	if err != nil {
		return fmt.Errorf("render %s: %w", kind, err)
	}

	if publishFlag, _ := cmd.Flags().GetBool("publish"); publishFlag {
		store, err := newStore(cfg.S3)
		if err != nil {
			return err
		}
		if owner == "" {
			owner = kind
		}
		url, err := store.Store(ctx, out, publish.Key(owner, kind), "image/svg+xml")
		if err != nil {
			return fmt.Errorf("publish %s: %w", kind, err)
		}
		logger.Info("Card published", "kind", kind, "url", url)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
		return err
	}

	path, _ := cmd.Flags().GetString("out")
	if path == "" || path == "-" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info("Card written", "kind", kind, "path", path, "bytes", len(out))
	return nil
}
