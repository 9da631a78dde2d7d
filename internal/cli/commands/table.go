package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// printTable печатает выровненную таблицу в Out.
func printTable(header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func optional(args []string, i int) *string {
	if len(args) <= i || args[i] == "" {
		return nil
	}
	v := args[i]
	return &v
}
