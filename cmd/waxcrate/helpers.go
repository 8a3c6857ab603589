package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"waxcrate/internal/collection"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeRows prints a table on a terminal and tab-separated lines otherwise,
// so piped output stays easy to cut and grep.
func writeRows(cmd *cobra.Command, headers []string, rows [][]string, aligns []columnAlignment) {
	out := cmd.OutOrStdout()
	if stdoutIsTerminal() {
		fmt.Fprintln(out, renderTable(headers, rows, aligns))
		return
	}
	for _, row := range rows {
		fmt.Fprintln(out, strings.Join(row, "\t"))
	}
}

func parseAlbumID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid album id %q", arg)
	}
	return id, nil
}

func formatYear(year int) string {
	if year == 0 {
		return "-"
	}
	return strconv.Itoa(year)
}

func formatValue(value *float64) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *value)
}

func albumRow(album collection.Album) []string {
	return []string{
		strconv.FormatInt(album.ID, 10),
		album.Title,
		album.Artist,
		formatYear(album.Year),
		strings.Join(album.Genres, ", "),
	}
}

var (
	albumHeaders = []string{"ID", "Title", "Artist", "Year", "Genres"}
	albumAligns  = []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft}
)
