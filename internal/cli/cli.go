package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawpaw2022/siggraph2025/internal/config"
	"github.com/pawpaw2022/siggraph2025/internal/extract"
	"github.com/pawpaw2022/siggraph2025/internal/logger"
	"github.com/pawpaw2022/siggraph2025/internal/render"
	"github.com/pawpaw2022/siggraph2025/internal/schedule"
	"github.com/pawpaw2022/siggraph2025/internal/session"
	"github.com/pawpaw2022/siggraph2025/internal/sidecar"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig    string
	flagOut       string
	flagSidecar   string
	flagDebugFile string
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sa-papers",
		Short: "Generate a browsable page of SIGGRAPH Asia 2025 technical papers",
		Long: `Fetches the SIGGRAPH Asia 2025 schedule, extracts technical paper
metadata, groups it by session, rewrites the url.json sidecar scaffold
(preserving manual edits), and renders a single self-contained HTML page.`,
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Optional YAML run config")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output HTML path (default papers.html)")
	cmd.Flags().StringVar(&flagSidecar, "sidecar", "", "Sidecar metadata file (default url.json)")
	cmd.Flags().StringVar(&flagDebugFile, "debug-file", "", "Raw fetch dump path (default debug_raw.html, 'none' disables)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runGenerate is the whole pipeline: fetch, extract, group, scaffold, render.
func runGenerate(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagOut != "" {
		cfg.OutputHTML = flagOut
	}
	if flagSidecar != "" {
		cfg.SidecarPath = flagSidecar
	}
	switch flagDebugFile {
	case "":
	case "none":
		cfg.DebugPath = ""
	default:
		cfg.DebugPath = flagDebugFile
	}

	banner("SIGGRAPH Asia 2025 Technical Papers Scraper")

	fmt.Println("\nFetching schedule data...")
	client := schedule.NewClient(cfg.ScheduleURL)
	markup, results := client.FetchAll(cmd.Context(), cfg.Dates)
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("  %s: error: %v\n", r.Date, r.Err)
			continue
		}
		fmt.Printf("  %s: got %d characters\n", r.Date, r.Bytes)
	}

	if markup == "" {
		return fmt.Errorf("could not fetch schedule data from any date")
	}
	fmt.Printf("\nTotal HTML: %d characters\n", len(markup))

	if cfg.DebugPath != "" {
		if err := os.WriteFile(cfg.DebugPath, []byte(markup), 0644); err != nil {
			logger.Warn("could not write debug file", logger.Fields{"path": cfg.DebugPath, "error": err.Error()})
		} else {
			fmt.Printf("Saved raw HTML to %s\n", cfg.DebugPath)
		}
	}

	fmt.Println("\nExtracting Technical Papers...")
	papers := extract.New(cfg.ImageBase).Papers(markup)

	withImages, withAuthors := 0, 0
	for _, p := range papers {
		if p.Image != "" {
			withImages++
		}
		if len(p.Authors) > 0 {
			withAuthors++
		}
	}
	fmt.Printf("Found %d Technical Papers\n", len(papers))
	fmt.Printf("  With images: %d\n", withImages)
	fmt.Printf("  With authors: %d\n", withAuthors)

	fmt.Println("\nGrouping by session...")
	sessions := session.Group(papers)
	fmt.Printf("Sessions: %d\n", len(sessions))
	for _, s := range sessions {
		fmt.Printf("  - %s: %d papers\n", s.Name, len(s.Papers))
	}

	store := sidecar.Load(cfg.SidecarPath)
	entries, err := store.WriteScaffold(sessions)
	if err != nil {
		return fmt.Errorf("writing sidecar scaffold: %w", err)
	}
	emptyURLs := 0
	for _, e := range entries {
		if e.URL == "" {
			emptyURLs++
		}
	}
	fmt.Printf("Wrote %s (%d entries, %d empty urls)\n", cfg.SidecarPath, len(entries), emptyURLs)

	fmt.Println("\nGenerating HTML output...")
	page, err := render.Generate(sessions, store.URLs(), store.Abstracts(), filepath.Base(cfg.SidecarPath))
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.OutputHTML, []byte(page), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Println()
	banner(fmt.Sprintf("[SUCCESS] Output saved to: %s\n[SUCCESS] Total: %d papers in %d sessions",
		cfg.OutputHTML, len(papers), len(sessions)))

	return nil
}

// banner prints a message framed by separator rules, matching the tool's
// original progress style.
func banner(msg string) {
	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Println(msg)
	fmt.Println(rule)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
