package main

import (
	"fmt"
	"os"
	"time"

	"github.com/au-prob/gamut/symbolic/interval"
	"github.com/au-prob/gamut/symbolic/parse"
	"github.com/au-prob/gamut/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// suiteFile is the YAML schema of a constraint suite.
type suiteFile struct {
	Constraints []suiteEntry `yaml:"constraints"`
}

type suiteEntry struct {
	Name       string   `yaml:"name"`
	Constraint string   `yaml:"constraint"`
	Index      string   `yaml:"index"`
	Vars       []string `yaml:"vars"`
}

// suiteCmd reports the canonical form of every constraint in a file.
var suiteCmd = &cobra.Command{
	Use:   "suite FILE",
	Short: "Report the canonical form of every constraint in a YAML suite",
	Long: `Suite reads a YAML file of named constraints and reports the dotted
interval of each. The exit status is non-zero when any extraction fails.

Suite file schema:

  constraints:
    - name: window
      constraint: x >= 2 && x <= 8
    - name: offset
      constraint: i >= n && i <= n+4
      index: i
      vars: [n:int]`,
	Args: cobra.ExactArgs(1),
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(suiteCmd)
}

func runSuite(cmd *cobra.Command, args []string) error {
	start := time.Now()
	defer utils.Opts().OnVerbose(func() {
		utils.TimeTrack(start, "suite")
	})
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var suite suiteFile
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return fmt.Errorf("suite %s: %w", args[0], err)
	}

	failed := 0
	for _, entry := range suite.Constraints {
		if err := runSuiteEntry(cmd, entry); err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", entry.Name, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d constraints failed", failed, len(suite.Constraints))
	}
	return nil
}

func runSuiteEntry(cmd *cobra.Command, entry suiteEntry) error {
	indexName := entry.Index
	if indexName == "" {
		indexName = flagIndex
	}
	index, decls, err := declarations(indexName, entry.Vars)
	if err != nil {
		return err
	}
	e, err := parse.Parse(entry.Constraint, decls...)
	if err != nil {
		return err
	}
	d, err := interval.FromConstraints(index, e)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", entry.Name, d)
	return nil
}
