package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/exp/slices"

	"posyandu/internal/listview"
	"posyandu/internal/models"
)

var metaStyle = lipgloss.NewStyle().Faint(true)

func renderPage(out io.Writer, snap listview.Snapshot[models.Posyandu]) {
	rows := make([][]string, 0, len(snap.Items))
	for _, p := range snap.Items {
		rows = append(rows, []string{strconv.Itoa(p.ID), p.Name, p.Kelurahan, p.Kecamatan, p.Address})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "KELURAHAN", "KECAMATAN", "ADDRESS").
		Rows(rows...)

	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out, metaStyle.Render(metaLine(snap.Meta, snap.Filter)))
}

func metaLine(meta models.Meta, filter map[string]string) string {
	line := fmt.Sprintf("page %d/%d · %d per page · %d total", meta.CurrentPage, meta.TotalPage, meta.Limit, meta.TotalData)
	if len(filter) == 0 {
		return line
	}

	parts := make([]string, 0, len(filter))
	for k, v := range filter {
		parts = append(parts, k+"="+v)
	}
	slices.Sort(parts)
	return line + " · " + strings.Join(parts, " ")
}
