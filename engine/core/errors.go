package core

import (
	"errors"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrWatcherClosed = errors.New("watcher closed")
)
