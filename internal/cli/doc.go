// Package cli handles process-level concerns for the generator. The
// generator's external interface has no flags, arguments, or environment
// variables, so the only process input is the binary's own install
// location; this package translates it into the application's internal
// configuration.
package cli
