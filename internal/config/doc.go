// Package config loads, normalizes, and validates fruitdata configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from an explicit path, the user config
// directory, or a project-local fruitdata.toml. A missing config file is
// not an error; the defaults make the tool usable out of the box.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
