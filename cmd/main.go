package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "insearch",
	Short: "Searches isoHunt for torrents and hands the ones you pick to your BitTorrent client.",
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	verbose := false
	flags.StringVar(&configFile, "config", "", "The config file to use, defaults to ~/.insearch/insearch.yaml")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show debug logging.")
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.SetEnvPrefix("INSEARCH")
	_ = viper.BindEnv("verbose")
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
