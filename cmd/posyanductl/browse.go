package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"posyandu/internal/listview"
	"posyandu/internal/models"
	"posyandu/internal/pager"
)

const browseHelp = `commands:
  n            next page
  p            previous page
  g <page>     go to page
  l <limit>    set items per page (returns to page 1)
  f key=value  set a filter (name, kecamatan, kelurahan); "f key=" clears it
  r            reload from page 1
  q            quit`

func newBrowseCmd(root *rootOptions) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through posyandu interactively",
		Long:  "Page through posyandu interactively.\n\n" + browseHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := newPosyanduView(cmd.Context(), root.apiURL, filters.filter(),
				pager.WithInitialLimit(root.limit))
			defer view.Close()

			return browse(cmd.InOrStdin(), cmd.OutOrStdout(), view)
		},
	}

	filters.register(cmd)
	return cmd
}

// browse reads one command per line from in and renders the page after each.
func browse(in io.Reader, out io.Writer, view *listview.View[models.Posyandu]) error {
	view.Wait()
	render(out, view.Snapshot())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		ok := true
		switch cmd {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "h", "help", "?":
			fmt.Fprintln(out, browseHelp)
			continue
		case "n", "next":
			ok = view.Next()
		case "p", "prev":
			ok = view.Prev()
		case "g", "goto":
			n, err := strconv.Atoi(arg)
			ok = err == nil && view.Goto(n)
		case "l", "limit":
			n, err := strconv.Atoi(arg)
			ok = err == nil && view.SetLimit(n)
		case "f", "filter":
			key, value, found := strings.Cut(arg, "=")
			key = strings.TrimSpace(key)
			if !found || key == "" {
				fmt.Fprintln(out, "usage: f key=value")
				continue
			}
			view.SetFilter(key, strings.TrimSpace(value))
		case "r", "reload":
			view.Reset()
		default:
			fmt.Fprintf(out, "unknown command %q, type h for help\n", cmd)
			continue
		}

		if !ok {
			fmt.Fprintln(out, "nothing to show there")
			continue
		}
		view.Wait()
		render(out, view.Snapshot())
	}
}

func render(out io.Writer, snap listview.Snapshot[models.Posyandu]) {
	if snap.Err != nil {
		fmt.Fprintf(out, "error: %v\n", snap.Err)
	}
	renderPage(out, snap)
}
