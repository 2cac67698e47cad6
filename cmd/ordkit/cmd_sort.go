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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/ordkit/cmd/ordkit/config"
	"github.com/AleutianAI/ordkit/pkg/permsort"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	sortField     int
	sortDelimiter string
	sortNumeric   bool
	sortReverse   bool
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

var sortCmd = &cobra.Command{
	Use:   "sort [file]",
	Short: "Stably sort lines, optionally by a key column",
	Long: `Sort lines from a file or stdin.

With -k, only the Nth column (1-based) defines the order while whole
lines move with it. The sort is stable: lines with equal keys keep
their input order.

Examples:
  ordkit sort names.txt
  ordkit sort access.log -k 3 --numeric
  cat data.csv | ordkit sort -d ',' -k 2 -r`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSortCommand,
}

func init() {
	sortCmd.Flags().IntVarP(&sortField, "key", "k", 0,
		"Sort by the Nth column (1-based); 0 sorts by the whole line")
	sortCmd.Flags().StringVarP(&sortDelimiter, "delimiter", "d", "",
		"Column delimiter (default: any run of whitespace)")
	sortCmd.Flags().BoolVarP(&sortNumeric, "numeric", "n", false,
		"Compare keys as numbers")
	sortCmd.Flags().BoolVarP(&sortReverse, "reverse", "r", false,
		"Reverse the sort order")
}

func runSortCommand(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	opts := sortOptions{
		field:     sortField,
		delimiter: sortDelimiter,
		numeric:   sortNumeric,
		reverse:   sortReverse,
	}
	if opts.delimiter == "" {
		opts.delimiter = config.Global.Sort.Delimiter
	}
	if !cmd.Flags().Changed("numeric") && config.Global.Sort.Numeric {
		opts.numeric = true
	}

	start := time.Now()
	lines, err := readLines(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if err := sortLines(cmd.Context(), opts, lines); err != nil {
		return err
	}

	appLogger.Debug("sort complete",
		"lines", len(lines),
		"key_field", opts.field,
		"numeric", opts.numeric,
		"duration", time.Since(start))

	return writeLines(cmd.OutOrStdout(), lines)
}

// =============================================================================
// SORT LOGIC
// =============================================================================

// sortOptions controls key extraction and comparison.
type sortOptions struct {
	field     int    // 1-based column; 0 means the whole line
	delimiter string // empty means any run of whitespace
	numeric   bool
	reverse   bool
}

// sortLines reorders lines in place.
//
// The key column drives the ordering while the full lines are carried
// along as the correlated payload, so a sort by column 3 never has to
// re-split lines inside the comparator.
func sortLines(ctx context.Context, opts sortOptions, lines []string) error {
	keys := make([]string, len(lines))
	for i, line := range lines {
		keys[i] = fieldKey(line, opts.field, opts.delimiter)
	}

	cmp := compareKeys(opts)
	if err := permsort.SortPairs(ctx, keys, lines, cmp); err != nil {
		return fmt.Errorf("sorting %d lines: %w", len(lines), err)
	}
	return nil
}

// compareKeys builds the key comparator for opts.
//
// Numeric mode follows sort(1): keys that do not parse as numbers
// compare as 0, and parse failures fall back to the string order so
// equal-valued garbage still sorts deterministically.
func compareKeys(opts sortOptions) func(a, b string) int {
	base := strings.Compare
	if opts.numeric {
		base = compareNumeric
	}
	if opts.reverse {
		inner := base
		return func(a, b string) int { return -inner(a, b) }
	}
	return base
}

func compareNumeric(a, b string) int {
	na, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	nb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA != nil {
		na = 0
	}
	if errB != nil {
		nb = 0
	}
	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	default:
		if errA != nil || errB != nil {
			return strings.Compare(a, b)
		}
		return 0
	}
}

// fieldKey extracts the 1-based field from line. Field 0 returns the
// whole line; a missing field returns "".
func fieldKey(line string, field int, delimiter string) string {
	if field <= 0 {
		return line
	}
	var cols []string
	if delimiter == "" {
		cols = strings.Fields(line)
	} else {
		cols = strings.Split(line, delimiter)
	}
	if field > len(cols) {
		return ""
	}
	return cols[field-1]
}

// =============================================================================
// I/O HELPERS
// =============================================================================

// openInput returns the input reader: the named file if one was
// given, stdin otherwise.
func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", args[0], err)
	}
	return f, func() { _ = f.Close() }, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	// Lines up to 16 MiB; the default 64 KiB cap is too small for
	// log-file payloads.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
