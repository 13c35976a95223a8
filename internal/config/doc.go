// Package config loads csbmgen run files.
//
// A run file is YAML:
//
//	model:
//	  n: 1000
//	  p: 10
//	  d: 5
//	  lambda: 1
//	  mu: 1
//	  rho: 0.1
//	seed: 42
//	workers: 1
//	output: out
//
// Loading order, lowest priority first:
//  1. Defaults (Default)
//  2. The run file, if a path is given
//  3. CSBM_* environment variables
//
// The merged result is validated before it is returned.
package config
