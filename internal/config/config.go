package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-envconfig"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	TelegramAPIToken string        `env:"TOKEN,required"`
	OwnerID          int64         `env:"OWNER_ID,required"`
	LogChatID        int64         `env:"LOG_CHAT_ID"`
	CatAPIKey        string        `env:"CAT_API_KEY"`
	LogLevel         int           `env:"LOG_LEVEL,default=4"`
	DotPath          string        `env:"DOT_PATH,default=~/.catbot"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT,default=10s"`
	EnabledHandlers  []string      `env:"HANDLERS,default=directory,gate,admin,cat"`
}

var (
	once         sync.Once
	globalConfig = &Config{}
	globalErr    error
)

// Load reads the configuration from CATBOT_-prefixed environment variables.
// The bot token and the owner id are mandatory; the process has no business
// starting without them.
func Load() (Config, error) {
	once.Do(func() {
		cfg := &Config{}
		envcfg := envconfig.Config{
			Lookuper: envconfig.PrefixLookuper("CATBOT_", envconfig.OsLookuper()),
			Target:   cfg,
		}
		if err := envconfig.ProcessWith(context.Background(), &envcfg); err != nil {
			globalErr = fmt.Errorf("process env config: %w", err)
			return
		}
		if cfg.OwnerID <= 0 {
			globalErr = fmt.Errorf("invalid owner id: %d", cfg.OwnerID)
			return
		}
		home, err := os.UserHomeDir()
		if err != nil {
			globalErr = fmt.Errorf("get user home directory: %w", err)
			return
		}
		cfg.DotPath = strings.Replace(cfg.DotPath, "~", home, 1)
		log.Traceln("loaded config")
		globalConfig = cfg
	})
	return *globalConfig, globalErr
}

func Get() Config {
	cfg, err := Load()
	if err != nil {
		log.WithField("error", err.Error()).Error("cant load config")
	}
	return cfg
}
