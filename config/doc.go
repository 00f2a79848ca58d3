// Package config loads the TOML run configuration of the teflow command:
//
//	[paths]   k, metric
//	[solver]  tolerance, feasibility_tolerance, parallel, variants
//	[log]     level, format
//	[metrics] textfile
//
// Every key is optional; Default() supplies the values used when a key or
// the whole file is absent. Command-line flags override the file.
package config
