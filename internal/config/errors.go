package config

import (
	"errors"

	"github.com/vdobler/probeplot"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = probeplot.ErrInvalidConfig
	ErrLoadConfig    = errors.New("load config failed")
	ErrNoMatch       = errors.New("no file matches")
	ErrAmbiguous     = errors.New("more than one file matches")
)
