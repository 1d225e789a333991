package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/odash/pkg/dropdown"
)

func newOptionsCmd() *cobra.Command {
	var (
		find   string
		lang   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "options key=Label [key=Label...]",
		Short: "Format key/label pairs as dropdown options",
		Example: `  odash options us="United States" de=Germany
  odash options us="United States" de=Germany --find de
  odash options b=Zürich a=Zagreb --lang de --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := parseEntries(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if find != "" {
				opt, ok := dropdown.Find(entries, find)
				if !ok {
					return fmt.Errorf("no option with value %q", find)
				}
				fmt.Fprintln(w, opt.Label)
				return nil
			}

			opts := dropdown.Options(entries)
			if lang != "" {
				tag, err := language.Parse(lang)
				if err != nil {
					return fmt.Errorf("invalid language %q: %w", lang, err)
				}
				opts = dropdown.SortByLabel(opts, tag)
			}

			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(opts)
			}

			key := color.New(color.FgCyan)
			for _, o := range opts {
				key.Fprintf(w, "%s", o.Value)
				fmt.Fprintf(w, "\t%s\n", o.Label)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&find, "find", "", "print only the label of this value")
	cmd.Flags().StringVar(&lang, "lang", "", "sort options by label using this language's collation")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print options as JSON")
	return cmd
}

func parseEntries(args []string) ([]dropdown.Entry, error) {
	entries := make([]dropdown.Entry, 0, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid option %q, want key=Label", arg)
		}
		entries = append(entries, dropdown.Entry{Key: k, Label: v})
	}
	return entries, nil
}
