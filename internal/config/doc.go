// Package config provides the configuration of optcompare.
// It defines where exports are written, which figure and report formats
// are produced, and how the optional .optcompare YAML file overrides
// the defaults.
package config
