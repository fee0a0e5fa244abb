package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"posyandu/config"
	"posyandu/internal/lib/logger/utils"
	"posyandu/internal/listview"
	"posyandu/internal/models"
	"posyandu/internal/pager"
	"posyandu/internal/portalapi"
)

type rootOptions struct {
	apiURL   string
	logLevel string
	limit    int
}

func newPosyanduView(ctx context.Context, apiURL string, filter pager.Filter, opts ...pager.Option) *listview.View[models.Posyandu] {
	client := portalapi.NewPortalAPIClient(apiURL)
	lister := listview.ListerFunc[models.Posyandu](client.ListPosyandu)
	return listview.New[models.Posyandu](ctx, lister, filter, opts...)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "posyanductl",
		Short:         "Browse the posyandu portal from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			if !cmd.Flags().Changed("api-url") {
				opts.apiURL = cfg.APIURL
			}
			if !cmd.Flags().Changed("limit") {
				opts.limit = cfg.PageLimit
			}
			if opts.logLevel == "" {
				return nil
			}
			return utils.InitLoggerLevel(opts.logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "portal base URL (defaults to API_URL)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "enable logging at this level (debug, info, warn, error)")
	cmd.PersistentFlags().IntVar(&opts.limit, "limit", models.DefaultLimit, "items per page")

	cmd.AddCommand(newListCmd(opts), newBrowseCmd(opts))
	return cmd
}
