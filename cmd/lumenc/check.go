package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lumen/internal/ast"
	"lumen/internal/diagfmt"
	"lumen/internal/driver"
	"lumen/internal/entity"
	"lumen/internal/project"
	"lumen/internal/types"
	"lumen/internal/ui"
	"lumen/internal/universe"
)

var (
	checkProgram  string
	checkFormat   string
	checkManifest string
	checkProgress bool
	checkCache    string
)

func init() {
	checkCmd.Flags().StringVar(&checkProgram, "program", "", "program from the built-in registry to check (omit to list them)")
	checkCmd.Flags().StringVar(&checkFormat, "format", "pretty", "diagnostic output format (pretty|json)")
	checkCmd.Flags().StringVar(&checkManifest, "manifest", "", "path to a lumen.toml to source Sizes overrides from")
	checkCmd.Flags().BoolVar(&checkProgress, "progress", false, "show a progress UI while checking")
	checkCmd.Flags().StringVar(&checkCache, "cache", "", "path to a check-result cache file (disabled when empty)")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a built-in program and report diagnostics",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkProgram == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "available programs:")
		for _, name := range listProgramNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %s\n", name, describeProgram(name))
		}
		return nil
	}

	prog, ok := lookupProgram(checkProgram)
	if !ok {
		return fmt.Errorf("unknown program %q (omit --program to list them)", checkProgram)
	}

	sizes, err := resolveSizes(checkManifest)
	if err != nil {
		return err
	}

	b, table, uni := newChecker(sizes)
	files := prog.build(b)
	paths := filePaths(b, files)

	cache, err := openCache(checkCache)
	if err != nil {
		return err
	}

	d := driver.New(b, table, uni, driver.Options{
		MaxDiagnostics: maxDiagnosticsFlag(cmd),
		Sizes:          sizes,
		Cache:          cache,
	})

	digest := project.HashBytes([]byte(prog.name))
	if checkManifest != "" {
		manifestBytes, err := os.ReadFile(checkManifest)
		if err != nil {
			return err
		}
		digest = project.Combine(project.HashBytes(manifestBytes), digest)
	}

	var result *driver.Result
	if checkProgress && isTerminal(os.Stdout) {
		events := make(chan ui.Event, 64)
		done := make(chan *driver.Result, 1)
		go func() { done <- d.RunWithProgress(files, paths, digest, events) }()
		tp := tea.NewProgram(ui.NewProgressModel("check: "+prog.name, paths, events), tea.WithOutput(cmd.OutOrStdout()))
		if _, err := tp.Run(); err != nil {
			return err
		}
		result = <-done
	} else {
		result = d.Run(files, digest)
	}

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor := resolveColor(colorMode, os.Stdout)

	if result.CacheHit {
		errs, warns := result.CachedCounts()
		fmt.Fprintf(cmd.OutOrStdout(), "%s: unchanged since last run (%d error(s), %d warning(s))\n", prog.name, errs, warns)
		if cache != nil {
			if err := cache.Save(); err != nil {
				return err
			}
		}
		if errs > 0 {
			return fmt.Errorf("%d error(s) reported on the cached run", errs)
		}
		return nil
	}

	switch strings.ToLower(checkFormat) {
	case "pretty":
		diagfmt.Pretty(cmd.OutOrStdout(), result.Bag, nil, diagfmt.PrettyOpts{Color: useColor, ShowNotes: true})
	case "json":
		if err := diagfmt.JSON(cmd.OutOrStdout(), result.Bag, nil, diagfmt.JSONOpts{IncludeNotes: true}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", checkFormat)
	}

	if cache != nil {
		if err := cache.Save(); err != nil {
			return err
		}
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: checking failed", prog.name)
	}
	return nil
}

func resolveSizes(manifestPath string) (types.Sizes, error) {
	if manifestPath == "" {
		return types.DefaultSizes(), nil
	}
	m, err := project.LoadManifest(manifestPath)
	if err != nil {
		return types.Sizes{}, err
	}
	return m.ResolveSizes(), nil
}

func newChecker(sizes types.Sizes) (*ast.Builder, *entity.Table, *universe.Universe) {
	b := ast.NewBuilder()
	table := entity.NewTable(entity.Hints{Scopes: 16, Entities: 64}, nil, nil)
	uni := universe.New(table, sizes)
	return b, table, uni
}

func openCache(path string) (*driver.Cache, error) {
	if path == "" {
		return nil, nil
	}
	return driver.LoadCache(path)
}

func maxDiagnosticsFlag(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || n <= 0 {
		return 1024
	}
	return n
}
