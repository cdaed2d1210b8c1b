// Package config defines application configuration and loads it from the
// environment and optional config files.
package config
