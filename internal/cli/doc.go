// Package cli is responsible for the blueprint command tree: parsing flags,
// validating user input, and handling process-level concerns like exit
// codes. It translates CLI invocations into calls on the app and core
// packages.
package cli
