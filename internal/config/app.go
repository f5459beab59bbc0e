package config

import (
	"fmt"
	"time"

	// zone database for containers without tzdata
	_ "time/tzdata"
)

const (
	MemoryBackend   = "memory"
	PostgresBackend = "postgres"

	defaultCacheMinutes = 60
	// memcached reads larger expirations as unix timestamps
	maxCacheTTL = 30 * 24 * time.Hour
)

type AppConfig struct {
	Backend            string `yaml:"storage-backend"`
	TimeZone           string `yaml:"time-zone"`
	ReportCacheMinutes int32  `yaml:"report-cache-minutes"`
}

func (s *AppConfig) validate() error {
	switch s.Backend {
	case "":
		s.Backend = MemoryBackend
	case MemoryBackend, PostgresBackend:
	default:
		return fmt.Errorf("unknown storage backend %q", s.Backend)
	}
	if _, err := time.LoadLocation(s.TimeZone); err != nil {
		return fmt.Errorf("unknown time zone %q", s.TimeZone)
	}
	return nil
}

func (s *AppConfig) StorageBackend() string {
	return s.Backend
}

// Location is the zone used to decide which calendar day "now" is.
func (s *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *AppConfig) ReportCacheTTL() time.Duration {
	if s.ReportCacheMinutes <= 0 {
		return defaultCacheMinutes * time.Minute
	}
	ttl := time.Duration(s.ReportCacheMinutes) * time.Minute
	if ttl > maxCacheTTL {
		return maxCacheTTL
	}
	return ttl
}
