package metrics

import "fmt"

// Config defines settings for metrics sinks.
type Config struct {
	// PrometheusEnabled registers the Prometheus sink and serves /metrics.
	PrometheusEnabled bool `json:"prometheus_enabled"`
	// PrometheusAddr is the listen address of the metrics server, e.g. ":9402".
	PrometheusAddr string `json:"prometheus_addr"`

	// InfluxEnabled writes search events to an InfluxDB instance.
	InfluxEnabled bool   `json:"influx_enabled"`
	InfluxURL     string `json:"influx_url"`
	InfluxToken   string `json:"influx_token"`
	InfluxOrg     string `json:"influx_org"`
	InfluxBucket  string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9402"
	}
}

// Validate checks mandatory fields of the enabled sinks.
func (c Config) Validate() error {
	if c.InfluxEnabled {
		if c.InfluxURL == "" {
			return fmt.Errorf("influx_url is required when influx_enabled is set")
		}
		if c.InfluxOrg == "" || c.InfluxBucket == "" {
			return fmt.Errorf("influx_org and influx_bucket are required when influx_enabled is set")
		}
	}
	return nil
}
