package payroll

import (
	"time"
)

// Config defines configuration of the payroll binary. Values are parsed from environment variables.
type Config struct {
	BankAddr           string        `split_words:"true" default:"localhost:11111"`
	BankDialTimeout    time.Duration `split_words:"true" default:"3s"`
	BankRequestTimeout time.Duration `split_words:"true" default:"5s"`
	RatePerBit         float64       `split_words:"true" default:"1.0"`
	EntitiesFile       string        `split_words:"true" default:"entities.json"`
	Schedule           string        `split_words:"true"`
	InitDebug          bool          `split_words:"true"`
}
