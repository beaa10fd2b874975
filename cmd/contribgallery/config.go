package main

import "time"

// Config is the container for app configuration.
// User-facing gallery parameters come from CLI flags, not from here.
type Config struct {
	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls
	GithubAPIRateLimit float64 `default:"5"`

	// HTTPClientTimeout - timeout for single http requests
	HTTPClientTimeout time.Duration `default:"30s"`

	// RunTimeout - timeout for the whole fetch-download-compose run
	RunTimeout time.Duration `default:"5m"`

	// LogLevel - logrus log level name
	LogLevel string `default:"info"`
}
