package transport

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config provides options to open a transport.
type Config struct {
	// URL selects the transport, e.g.
	//   /dev/ttyUSB0, serial:///dev/ttyUSB0  serial port
	//   tcp://host:port                       serial-over-TCP
	//   ws://host:port/path                   websocket
	//   mqtt://host:port/prefix/?device=ID    MQTT relay
	URL          string
	Baud         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

var defaultConfig = Config{
	URL:          "/dev/cu.usbmodem1101",
	Baud:         460800,
	ReadTimeout:  time.Second,
	WriteTimeout: 2 * time.Second,
}

func init() {
	if val := os.Getenv("LUMEN_PORT"); val != "" {
		defaultConfig.URL = val
	}
	if val := os.Getenv("LUMEN_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.Baud = baud
		}
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.URL, "port", defaultConfig.URL, "Serial device path or transport URL.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Baud rate.")
	flag.DurationVar(&defaultConfig.ReadTimeout, "read-timeout", defaultConfig.ReadTimeout, "Read timeout.")
	flag.DurationVar(&defaultConfig.WriteTimeout, "write-timeout", defaultConfig.WriteTimeout, "Write timeout.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// WithURL returns a copy of the config using url.
func (c *Config) WithURL(url string) *Config {
	conf := *c
	conf.URL = url
	return &conf
}
