package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sp0x/insearch/isohunt"
	"github.com/sp0x/insearch/presentation"
	"github.com/sp0x/insearch/torrent"
)

type searchOptions struct {
	age    string
	picks  string
	add    bool
	output string
}

func init() {
	opts := searchOptions{}
	cmdSearch := &cobra.Command{
		Use:   "search [terms...]",
		Short: "Search isoHunt, optionally adding the selected results to your client.",
		Run: func(c *cobra.Command, args []string) {
			searchCommand(c, args, &opts)
		},
	}
	cmdFlags := cmdSearch.Flags()
	cmdFlags.StringVarP(&opts.age, "age", "a", "", "Only show torrents from the last day, week, month or year (or 1, 7, 30, 365 days).")
	cmdFlags.StringVarP(&opts.picks, "select", "s", "", "Rows to pick from the results, such as 1,3-4.")
	cmdFlags.BoolVar(&opts.add, "add", false, "Add the selected rows to the client through the watch directory.")
	cmdFlags.StringVarP(&opts.output, "output", "o", "table", "Output format: table, json or yaml.")
	cmdFlags.String("watch_dir", "", "The directory your BitTorrent client watches for new torrents.")
	_ = viper.BindPFlag("watch_dir", cmdFlags.Lookup("watch_dir"))
	_ = viper.BindEnv("watch_dir")
	_ = viper.BindEnv("api_url")
	rootCmd.AddCommand(cmdSearch)
}

func searchCommand(_ *cobra.Command, args []string, opts *searchOptions) {
	var adder torrent.Adder
	if opts.add {
		watchAdder, history, err := newAdder(&appConfig)
		if err != nil {
			log.Errorf("Couldn't set up the watch directory: %v", err)
			os.Exit(1)
		}
		defer history.Close()
		adder = watchAdder
	}
	client := newSearchClient(&appConfig)
	if err := runSearch(context.Background(), client, adder, strings.Join(args, " "), opts, os.Stdout); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// runSearch searches, renders the outcome and adds the picked rows when asked to.
func runSearch(ctx context.Context, searcher isohunt.Searcher, adder torrent.Adder, text string, opts *searchOptions, out io.Writer) error {
	age, err := isohunt.ParseAge(opts.age)
	if err != nil {
		return err
	}
	query, err := isohunt.NewQuery(text, age)
	if err != nil {
		return err
	}
	presenter, err := presentation.NewPresenter(opts.output)
	if err != nil {
		return err
	}
	picks, err := presentation.ParsePicks(opts.picks)
	if err != nil {
		return err
	}
	set := <-isohunt.Async(ctx, searcher, *query)
	if err := presenter.Render(out, set); err != nil {
		return err
	}
	if set == nil || len(picks) == 0 {
		return nil
	}
	urls, err := presentation.Select(set, picks)
	if err != nil {
		return err
	}
	if adder == nil {
		for _, u := range urls {
			_, _ = fmt.Fprintln(out, u)
		}
		return nil
	}
	outcomes := torrent.AddAll(ctx, adder, urls)
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			_, _ = fmt.Fprintf(out, "Failed %s: %v\n", o.URL, o.Err)
		case o.Added.Duplicate:
			_, _ = fmt.Fprintf(out, "Already added %s\n", o.Added.InfoHash)
		default:
			_, _ = fmt.Fprintf(out, "Added %s -> %s\n", o.Added.InfoHash, o.Added.Path)
		}
	}
	if failed := torrent.Failed(outcomes); failed > 0 {
		return fmt.Errorf("%d of %d torrents could not be added", failed, len(outcomes))
	}
	return nil
}
