package banksim

import (
	"time"
)

// Config defines configuration of the bank simulator. Values are parsed from environment variables.
type Config struct {
	ServerPort                    int           `split_words:"true" default:"11111"`
	ServerHost                    string        `split_words:"true" default:"localhost"`
	ServerGracefulShutdownTimeout time.Duration `split_words:"true" default:"3s"`
	InitDebug                     bool          `split_words:"true"`
}
