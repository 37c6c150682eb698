package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"lumen/internal/diagfmt"
	"lumen/internal/driver"
	"lumen/internal/project"
)

var (
	dumpProgram  string
	dumpManifest string
)

func init() {
	dumpCmd.Flags().StringVar(&dumpProgram, "program", "", "program from the built-in registry to check and dump (omit to list them)")
	dumpCmd.Flags().StringVar(&dumpManifest, "manifest", "", "path to a lumen.toml to source Sizes overrides from")
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Check a built-in program and dump its resolved scopes, entities, and types as JSON",
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	if dumpProgram == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "available programs:")
		for _, name := range listProgramNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %s\n", name, describeProgram(name))
		}
		return nil
	}

	prog, ok := lookupProgram(dumpProgram)
	if !ok {
		return fmt.Errorf("unknown program %q (omit --program to list them)", dumpProgram)
	}

	sizes, err := resolveSizes(dumpManifest)
	if err != nil {
		return err
	}

	b, table, uni := newChecker(sizes)
	files := prog.build(b)

	d := driver.New(b, table, uni, driver.Options{Sizes: sizes})
	result := d.Run(files, project.HashBytes([]byte(prog.name)))

	if result.Checker == nil {
		return fmt.Errorf("%s: no checker state to dump (unexpected cache hit with no cache configured)", prog.name)
	}

	output := diagfmt.BuildSemanticsOutput(table, result.Checker)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
