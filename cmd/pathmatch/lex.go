// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/woozymasta/pathmatch"
)

func lexCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "lex <pattern>",
		Short: "Print pattern tokens and capture keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pathmatch.NewParser(args[0], pathmatch.Options{})
			if err != nil {
				return err
			}

			tokens := p.Tokens()
			a.log.Debug("pattern compiled", "pattern", args[0], "expr", p.Regexp().String())

			return writeOutput(cmd.OutOrStdout(), output, tokens, func(w io.Writer) error {
				for _, tok := range tokens {
					if _, err := fmt.Fprintf(w, "%-9s %s\n", tok.Kind, tok.Value); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", a.cfg.Output, "Output format: json, yaml, text")

	return cmd
}
