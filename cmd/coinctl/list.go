package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
	"github.com/NastyaGoryachaya/coin-tracker/internal/infra/api_client"
	"github.com/NastyaGoryachaya/coin-tracker/internal/infra/db"
	"github.com/NastyaGoryachaya/coin-tracker/internal/pkg/pricefmt"
	"github.com/NastyaGoryachaya/coin-tracker/internal/service/coinlist"
)

type listOptions struct {
	currency string
	query    string
	page     int
	pageSize int
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Load the coin list (cache or upstream) and print one page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			kv, err := db.OpenKV(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer kv.Close()

			svc := coinlist.NewService(api_client.NewClient(cfg.CoinGecko), kv, cfg.Loader, log)
			list, err := svc.LoadCoinList(cmd.Context(), opts.currency)
			var le *coinlist.LoadError
			switch {
			case errors.As(err, &le) && len(le.Partial) > 0:
				log.Warn("printing partial list", "error", le.Err)
				list = le.Partial
			case err != nil:
				return err
			}

			items, pageCount := coinlist.FilterAndPaginate(list, opts.query, opts.page, opts.pageSize)
			return printTable(cmd.OutOrStdout(), items, opts.currency, opts.page, pageCount)
		},
	}
	cmd.Flags().StringVar(&opts.currency, "currency", "usd", "quote currency")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "filter by name or symbol")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page number (1-based)")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 25, "coins per page")
	return cmd
}

func printTable(w io.Writer, items []domain.CoinSummary, currency string, page, pageCount int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSYMBOL\tNAME\tPRICE\tMARKET CAP\t24H")
	for _, c := range items {
		rank := "-"
		if c.MarketCapRank != nil {
			rank = fmt.Sprint(*c.MarketCapRank)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			rank,
			strings.ToUpper(c.Symbol),
			c.Name,
			pricefmt.FormatPrice(c.CurrentPrice, currency, 1, false),
			pricefmt.FormatMarketCap(c.MarketCap, currency, 1),
			pricefmt.Format24hChange(c.PriceChangePercentage24h),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "page %d/%d\n", page, pageCount)
	return err
}
