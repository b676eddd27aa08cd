package config

import "time"

var (
	ReleaseRequestTimeout = 10 * time.Second
	FetchRetryTimeout     = 30 * time.Second
)
