// Package config loads and validates the recipeconv TOML configuration.
// Configuration is optional: every setting has a default, and a missing
// config file yields the defaults.
package config
