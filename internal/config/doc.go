// Package config holds the combiner configuration: logging settings and the
// positional salary-column layout, loaded from an optional config.yaml and
// PAY_* environment variables, plus the fixed application constants.
package config
