package config

// Config holds runtime settings for the patrimônio CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the remote asset service.
//   - SessionDBPath: path of the local sqlite session store.
//   - LogLevel: debug|info|warn|error.
type Config struct {
	ServerBaseURL string
	SessionDBPath string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.SessionDBPath = "patrimonio.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
