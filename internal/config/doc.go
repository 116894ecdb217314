// Package config loads adapter configuration.
//
// Two sources exist: a YAML file describing the target project, zone,
// network, and image catalog for the CLI, and environment variables
// controlling operation polling and retry behavior. Environment values
// always have defaults, so an empty environment is fully usable.
package config
