package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sp0x/insearch/server"
)

func init() {
	cmdServe := &cobra.Command{
		Use:   "serve",
		Short: "Runs the search API and feed server.",
		Run:   serve,
	}
	port := 5000
	cmdFlags := cmdServe.Flags()
	cmdFlags.IntVarP(&port, "port", "p", 5000, "The port to listen on.")
	_ = viper.BindEnv("port")
	_ = viper.BindPFlag("port", cmdFlags.Lookup("port"))
	_ = viper.BindEnv("api_key")
	_ = viper.BindEnv("watch_dir")
	rootCmd.AddCommand(cmdServe)
}

func serve(_ *cobra.Command, _ []string) {
	adder, history, err := newAdder(&appConfig)
	if err != nil {
		fmt.Printf("Couldn't initialize: %s\n", err)
		os.Exit(1)
	}
	defer history.Close()
	rserver := server.NewServer(&appConfig, newSearchClient(&appConfig), adder, history)
	if err := rserver.Listen(); err != nil {
		fmt.Println(err)
	}
}
