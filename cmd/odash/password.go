package main

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/odash/pkg/password"
)

var errWeakPassword = errors.New("password does not meet the policy")

func newPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password <value>",
		Short: "Check a password against the policy",
		Long: `Checks that a password has at least 8 characters, a digit, a lowercase
and an uppercase letter and one of ! + @ # $ % ^ & *.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			missing := password.Missing(args[0])
			if len(missing) == 0 {
				color.New(color.FgGreen).Fprintln(w, "ok")
				return nil
			}

			red := color.New(color.FgRed)
			for _, err := range missing {
				red.Fprint(w, "missing: ")
				_, _ = w.Write([]byte(strings.TrimPrefix(err.Error(), "password: ") + "\n"))
			}
			return errWeakPassword
		},
	}
}
