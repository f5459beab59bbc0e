package config

import "time"

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts"`
	TimeoutMs int64    `yaml:"timeout-ms"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

// Enabled reports whether a report cache is configured at all.
func (s *MemcachedConfig) Enabled() bool {
	return len(s.NodeHosts) > 0
}

func (s *MemcachedConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutMs) * time.Millisecond
}
