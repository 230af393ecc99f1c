package atm

import (
	"time"
)

const (
	ModeCLI = "cli"
	ModeTCP = "tcp"
)

// Config defines configuration of application. Values are parsed from environment variables.
type Config struct {
	Mode                          string        `default:"cli"`
	Inventory                     map[int]int   `default:"100:10,200:5,500:2"`
	ServerPort                    int           `split_words:"true" default:"11111"`
	ServerHost                    string        `split_words:"true" default:"localhost"`
	ServerGracefulShutdownTimeout time.Duration `split_words:"true" default:"3s"`
	InitDebug                     bool          `split_words:"true"`
	LogFormat                     string        `split_words:"true" default:"text"`
}
