// Package app contains the core generator logic. It defines the main App
// struct, its configuration, and the locate-parse-expand-emit pipeline,
// decoupled from the process entrypoint.
package app
