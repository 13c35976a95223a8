// Command csbmgen samples Contextual Stochastic Block Model datasets.
//
// Usage:
//
//	csbmgen sample --config run.yaml --out data/
//	csbmgen snr --n 1000 --p 10 --lambda 1.5 --mu 2
//	csbmgen stats data/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(defaultLogger).Execute(); err != nil {
		os.Exit(1)
	}
}
