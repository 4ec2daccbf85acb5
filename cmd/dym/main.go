package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/dym"
	"github.com/teranos/dym/config"
	"github.com/teranos/dym/db"
	"github.com/teranos/dym/errors"
	"github.com/teranos/dym/logger"
	"github.com/teranos/dym/store"
)

var (
	dbPath    string
	table     string
	fields    []string
	threshold int
	format    string
	jsonLogs  bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "dym WORD",
	Short: "Suggest existing values for a word that may be misspelled",
	Long: `dym — "did you mean" lookups against a SQLite table.

Given a word and one or more columns, dym returns the rows matching the
word exactly, or — when nothing matches — the distinct stored values
within edit distance of the word.

Examples:
  dym Rome --db cities.db --table cities --field city
  dym Rom --db cities.db --table cities --field city
  dym Romania --db cities.db --table cities --field city --field country
  dym Vancouvr --db cities.db --table cities --field city --threshold 2

Flags fall back to a dym.toml config file (database.path, suggest.table,
suggest.fields, suggest.threshold).`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(jsonLogs); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		if verbose {
			logger.SetVerbose()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit structured JSON logs")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&dbPath, "db", "", "Path to the SQLite database")
	rootCmd.Flags().StringVar(&table, "table", "", "Table to suggest from")
	rootCmd.Flags().StringSliceVar(&fields, "field", nil, "Column to match against (repeatable)")
	rootCmd.Flags().IntVar(&threshold, "threshold", -1, "Edit-distance tolerance (negative = derive from word length)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table/json)")

	rootCmd.AddCommand(versionCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	word := args[0]

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	// Flags win over config
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}
	if table == "" {
		table = cfg.Suggest.Table
	}
	if len(fields) == 0 {
		fields = cfg.Suggest.Fields
	}
	if threshold < 0 {
		threshold = cfg.Suggest.Threshold
	}

	if table == "" {
		return errors.WithHint(
			errors.New("no table specified"),
			"pass --table or set suggest.table in dym.toml",
		)
	}
	if len(fields) == 0 {
		return errors.WithHint(
			errors.New("no fields specified"),
			"pass --field at least once or set suggest.fields in dym.toml",
		)
	}

	database, err := db.Open(dbPath, logger.Logger)
	if err != nil {
		return err
	}
	defer database.Close()

	engine := dym.New(
		store.NewTableStore(database, table, logger.Logger),
		dym.WithLogger(logger.Logger),
	)

	var opts []dym.SuggestOption
	if threshold >= 0 {
		opts = append(opts, dym.WithThreshold(threshold))
	}

	result, err := engine.Suggest(context.Background(), dym.Fields(fields...), word, opts...)
	if err != nil {
		return errors.Wrap(err, "suggestion lookup failed")
	}

	if format == "json" {
		return displayJSON(result)
	}
	return displayTable(result, word)
}

func displayTable(result *dym.Result, word string) error {
	if result.IsExact() {
		records := result.Records()
		pterm.Success.Printf("Found %d exact match(es) for %q\n", len(records), word)
		pterm.Println()

		data := pterm.TableData{fields}
		for _, record := range records {
			row := make([]string, len(fields))
			for i, field := range fields {
				row[i], _ = record.Field(field)
			}
			data = append(data, row)
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}

	values := result.Values()
	if len(values) == 0 {
		pterm.Warning.Printf("No match and no similar values for %q\n", word)
		return nil
	}

	pterm.Info.Printf("No exact match for %q. Did you mean:\n", word)

	// Stable presentation only; the result itself is an unordered set
	sort.Strings(values)
	items := make([]pterm.BulletListItem, len(values))
	for i, value := range values {
		items[i] = pterm.BulletListItem{Level: 0, Text: value}
	}
	return pterm.DefaultBulletList.WithItems(items).Render()
}

func displayJSON(result *dym.Result) error {
	type output struct {
		Exact       []map[string]string `json:"exact,omitempty"`
		Suggestions []string            `json:"suggestions,omitempty"`
	}

	var out output
	if result.IsExact() {
		for _, record := range result.Records() {
			row := make(map[string]string, len(fields))
			for _, field := range fields {
				row[field], _ = record.Field(field)
			}
			out.Exact = append(out.Exact, row)
		}
	} else {
		out.Suggestions = result.Values()
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode result")
	}
	fmt.Println(string(encoded))
	return nil
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
