// Package app defines the runtime contract shared by executable entrypoints.
//
// cmd/* binaries start application components through Runner
// without depending on their concrete implementations.
package app

// Runner represents a runnable application component.
// Run blocks until the component stops and returns any startup or fatal error.
type Runner interface {
	Run() error
}
