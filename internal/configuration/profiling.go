package configuration

// ProfilingConfig exposes net/http/pprof, useful to find slow ticks
type ProfilingConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port,omitempty"`
}
