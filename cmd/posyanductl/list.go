package main

import (
	"github.com/spf13/cobra"

	"posyandu/internal/pager"
)

type filterFlags struct {
	name      string
	kecamatan string
	kelurahan string
}

func (f filterFlags) filter() pager.Filter {
	var filter pager.Filter
	filter = filter.With("name", f.name)
	filter = filter.With("kecamatan", f.kecamatan)
	filter = filter.With("kelurahan", f.kelurahan)
	return filter
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "filter by name")
	cmd.Flags().StringVar(&f.kecamatan, "kecamatan", "", "filter by kecamatan")
	cmd.Flags().StringVar(&f.kelurahan, "kelurahan", "", "filter by kelurahan")
}

func newListCmd(root *rootOptions) *cobra.Command {
	var (
		page    int
		filters filterFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of posyandu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := newPosyanduView(cmd.Context(), root.apiURL, filters.filter(),
				pager.WithInitialPage(page),
				pager.WithInitialLimit(root.limit))
			defer view.Close()

			view.Wait()
			snap := view.Snapshot()
			if snap.Err != nil {
				return snap.Err
			}
			renderPage(cmd.OutOrStdout(), snap)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page to print")
	filters.register(cmd)
	return cmd
}
