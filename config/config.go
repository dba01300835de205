package config

import (
	"os"
	"path"
	"time"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/insearch/isohunt"
)

var appname = "insearch"

//go:generate mockgen -destination=mocks/mock_config.go -package=mocks . Config
type Config interface {
	GetInt(key string) int
	GetString(key string) string
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	Get(key string) interface{}
	Set(key string, value interface{})
	SetDefault(key string, value interface{})
}

func GetMinLogLevel(c Config) log.Level {
	if c.GetBool("verbose") {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// GetAppDir is where our config, history and watch dir live by default.
func GetAppDir() string {
	home, _ := homedir.Dir()
	return path.Join(home, "."+appname)
}

// GetDataPath returns a path under the app dir, creating the app dir.
func GetDataPath(name string) string {
	dir := GetAppDir()
	_ = os.MkdirAll(dir, os.ModePerm)
	return path.Join(dir, name)
}

func SetDefaults(cfg Config) {
	cfg.SetDefault("api_url", isohunt.DefaultEndpoint)
	cfg.SetDefault("timeout", "30s")
	cfg.SetDefault("user_agent", "")
	cfg.SetDefault("watch_dir", GetDataPath("watch"))
	cfg.SetDefault("history_db", GetDataPath("history.db"))
	cfg.SetDefault("port", 5000)
	cfg.SetDefault("verbose", false)
}

// SearchOptions builds the search client options out of the configuration.
func SearchOptions(cfg Config) []isohunt.Option {
	opts := []isohunt.Option{isohunt.WithEndpoint(cfg.GetString("api_url"))}
	if timeout := cfg.GetDuration("timeout"); timeout > 0 {
		opts = append(opts, isohunt.WithTimeout(timeout))
	}
	if ua := cfg.GetString("user_agent"); ua != "" {
		opts = append(opts, isohunt.WithUserAgent(ua))
	}
	return opts
}
