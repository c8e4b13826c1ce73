package intern

import (
	"errors"
	"flag"
	"fmt"
)

// Defaults for [Config].
const (
	DefaultShards          = 16
	DefaultInitialCapacity = 256
)

// Config configures a [Registry].
type Config struct {
	// Shards sets how many locks the key table is split across. More shards
	// reduce write contention. The value must be a power of two so a key's
	// shard can be picked by masking its hash.
	Shards int `yaml:"shards"`

	// InitialCapacity is the per-shard capacity hint used to size the key
	// tables up front.
	InitialCapacity int `yaml:"initial_capacity"`
}

// DefaultConfig returns the default registry configuration.
func DefaultConfig() Config {
	return Config{
		Shards:          DefaultShards,
		InitialCapacity: DefaultInitialCapacity,
	}
}

// RegisterFlags registers flags for the Config.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix("intern.", f)
}

// RegisterFlagsWithPrefix registers flags with the given prefix.
func (cfg *Config) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	f.IntVar(&cfg.Shards, prefix+"shards", DefaultShards, "Number of lock shards in the key registry. Must be a power of two.")
	f.IntVar(&cfg.InitialCapacity, prefix+"initial-capacity", DefaultInitialCapacity, "Initial capacity hint for each registry shard.")
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Shards <= 0 || cfg.Shards&(cfg.Shards-1) != 0 {
		errs = append(errs, fmt.Errorf("Shards must be a positive power of two, got %d", cfg.Shards))
	}
	if cfg.InitialCapacity < 0 {
		errs = append(errs, fmt.Errorf("InitialCapacity must not be negative, got %d", cfg.InitialCapacity))
	}
	return errors.Join(errs...)
}
