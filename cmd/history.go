package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sp0x/insearch/storage"
)

func init() {
	truncate := false
	cmdHistory := &cobra.Command{
		Use:   "history",
		Short: "Lists the torrents that were added.",
		Run: func(c *cobra.Command, _ []string) {
			historyCommand(truncate)
		},
	}
	cmdHistory.Flags().BoolVar(&truncate, "truncate", false, "Forget every added torrent.")
	rootCmd.AddCommand(cmdHistory)
}

func historyCommand(truncate bool) {
	history, err := storage.NewHistory(appConfig.GetString("history_db"))
	if err != nil {
		log.Errorf("Couldn't open history: %v", err)
		os.Exit(1)
	}
	defer history.Close()
	if truncate {
		if err := history.Truncate(); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		log.Info("History truncated")
		return
	}
	entries, err := history.List()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	tabWr := new(tabwriter.Writer)
	tabWr.Init(os.Stdout, 0, 8, 1, '\t', 0)
	for _, e := range entries {
		_, _ = fmt.Fprintf(tabWr, "%s\t%s\t%s\t%s\n", humanize.Time(e.AddedAt), e.InfoHash, e.Name, e.Path)
	}
	_ = tabWr.Flush()
}
