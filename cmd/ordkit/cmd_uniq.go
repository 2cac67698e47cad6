// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/ordkit/pkg/ordset"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	uniqField      int
	uniqDelimiter  string
	uniqIgnoreCase bool
	uniqCount      bool
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

var uniqCmd = &cobra.Command{
	Use:   "uniq [file]",
	Short: "Print sorted lines with exact duplicates removed",
	Long: `Deduplicate lines from a file or stdin, emitting them in sorted order.

Only byte-identical lines count as duplicates. With -k or -i the sort
key is looser than the line itself, so lines that merely sort equal
(same key column, or same letters in a different case) are all kept,
adjacent in the output.

Examples:
  ordkit uniq names.txt
  ordkit uniq -i names.txt
  ordkit uniq access.log -k 1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUniqCommand,
}

func init() {
	uniqCmd.Flags().IntVarP(&uniqField, "key", "k", 0,
		"Order by the Nth column (1-based); 0 orders by the whole line")
	uniqCmd.Flags().StringVarP(&uniqDelimiter, "delimiter", "d", "",
		"Column delimiter (default: any run of whitespace)")
	uniqCmd.Flags().BoolVarP(&uniqIgnoreCase, "ignore-case", "i", false,
		"Order case-insensitively (distinct cases are still all kept)")
	uniqCmd.Flags().BoolVarP(&uniqCount, "count", "c", false,
		"Report the number of dropped duplicates on stderr")
}

func runUniqCommand(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	start := time.Now()
	lines, err := readLines(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	out, err := uniqLines(cmd.Context(), uniqOptions{
		field:      uniqField,
		delimiter:  uniqDelimiter,
		ignoreCase: uniqIgnoreCase,
	}, lines)
	if err != nil {
		return err
	}

	appLogger.Debug("uniq complete",
		"lines_in", len(lines),
		"lines_out", len(out),
		"duration", time.Since(start))

	if uniqCount {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d duplicate lines dropped\n", len(lines)-len(out))
	}
	return writeLines(cmd.OutOrStdout(), out)
}

// =============================================================================
// UNIQ LOGIC
// =============================================================================

type uniqOptions struct {
	field      int
	delimiter  string
	ignoreCase bool
}

// uniqLines returns the distinct lines in sorted order. Distinctness
// is exact line equality; the comparator only decides placement.
func uniqLines(ctx context.Context, opts uniqOptions, lines []string) ([]string, error) {
	if lines == nil {
		lines = []string{}
	}
	s, err := ordset.NewFromSlice(ctx, lines, lineComparator(opts))
	if err != nil {
		return nil, fmt.Errorf("building line set: %w", err)
	}
	return s.Values(), nil
}

// lineComparator orders lines by the configured key, folding case
// when requested.
func lineComparator(opts uniqOptions) func(a, b string) int {
	return func(a, b string) int {
		ka := fieldKey(a, opts.field, opts.delimiter)
		kb := fieldKey(b, opts.field, opts.delimiter)
		if opts.ignoreCase {
			ka = strings.ToLower(ka)
			kb = strings.ToLower(kb)
		}
		return strings.Compare(ka, kb)
	}
}
