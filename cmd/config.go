package main

import (
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/sp0x/insearch/config"
	"github.com/sp0x/insearch/isohunt"
	"github.com/sp0x/insearch/requests"
	"github.com/sp0x/insearch/storage"
	"github.com/sp0x/insearch/torrent"
)

var appConfig config.ViperConfig

func initConfig() {
	config.SetDefaults(&appConfig)
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		appDir := config.GetAppDir()
		_ = os.MkdirAll(appDir, os.ModePerm)
		viper.AddConfigPath(appDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("insearch")
	}
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			err = viper.SafeWriteConfig()
			if err != nil {
				log.Warningf("error while writing default config file: %v\n", err)
			}
		} else {
			log.Warningf("error while reading config file: %v\n", err)
			os.Exit(1)
		}
	}
	log.SetLevel(config.GetMinLogLevel(&appConfig))
}

func newHTTPClient(cfg config.Config) *http.Client {
	transport, err := requests.NewTransport(nil)
	if err != nil {
		log.Warning(err)
		transport = http.DefaultTransport
	}
	return &http.Client{Transport: transport, Timeout: cfg.GetDuration("timeout")}
}

func newSearchClient(cfg config.Config) *isohunt.Client {
	opts := append([]isohunt.Option{isohunt.WithHTTPClient(newHTTPClient(cfg))}, config.SearchOptions(cfg)...)
	return isohunt.NewClient(opts...)
}

// newAdder opens the history and the watch dir adder. The returned history must be closed.
func newAdder(cfg config.Config) (*torrent.WatchDirAdder, *storage.History, error) {
	history, err := storage.NewHistory(cfg.GetString("history_db"))
	if err != nil {
		return nil, nil, err
	}
	adder, err := torrent.NewWatchDirAdder(cfg.GetString("watch_dir"), newHTTPClient(cfg), history)
	if err != nil {
		_ = history.Close()
		return nil, nil, err
	}
	return adder, history, nil
}
