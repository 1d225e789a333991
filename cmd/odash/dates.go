package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/odash/pkg/dates"
)

type datesOutput struct {
	StartDate string `json:"startDate" yaml:"startDate"`
	EndDate   string `json:"endDate" yaml:"endDate"`
	Days      int    `json:"days" yaml:"days"`
}

func newDatesCmd() *cobra.Command {
	var (
		days   int
		at     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "dates",
		Short: "Print the window from the Monday of this week back a number of days",
		Long: `Prints the start and end of a date window.

The window starts on the Monday of the current week, moved back --days more
days, and ends now. Use --at to compute the window for another day.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clock := dates.Clock(dates.SystemClock{})
			if at != "" {
				t, err := dates.ParseDateStr(at)
				if err != nil {
					return err
				}
				clock = dates.FixedClock(t)
			}

			w := dates.GetDatesWith(clock, days)
			return writeDates(cmd.OutOrStdout(), output, datesOutput{
				StartDate: dates.DateStr(w.StartDate),
				EndDate:   dates.DateStr(w.EndDate),
				Days:      int(w.EndDate.Sub(w.StartDate) / (24 * time.Hour)),
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "extra days before this week's Monday")
	cmd.Flags().StringVar(&at, "at", "", "compute the window for this day (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func writeDates(w io.Writer, format string, out datesOutput) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		_, err := fmt.Fprintf(w, "start: %s\nend:   %s\n", out.StartDate, out.EndDate)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
