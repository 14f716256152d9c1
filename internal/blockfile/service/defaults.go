package service

import "time"

const (
	defaultPollInterval = 1 * time.Second
	defaultBackoff      = 5 * time.Second

	scanWorkers = 4

	eventBatchSize     = 500
	eventFlushInterval = 1 * time.Second
	eventFlushRPS      = 10
)
