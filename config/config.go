package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

const (
	Host        = "0.0.0.0"
	DefaultPort = 3000

	PortEnv = "PING_LISTEN_PORT"
)

type Config struct {
	Host string
	Port uint16
}

// Load reads the listen configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom is Load with an injectable environment lookup.
// An unset variable falls back to DefaultPort; a set but invalid one is an error.
func LoadFrom(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		Host: Host,
		Port: DefaultPort,
	}

	raw, ok := lookup(PortEnv)
	if !ok {
		return cfg, nil
	}

	port, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return nil, errors.Wrapf(err, "%s must be a valid port number, got %q", PortEnv, raw)
	}
	cfg.Port = uint16(port)

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
