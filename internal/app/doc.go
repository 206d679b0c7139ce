// Package app contains the application shell around the blueprint core: it
// owns the logger, validates run configuration, and moves documents between
// the file system and the in-memory model. Core packages never touch files;
// all I/O funnels through here.
package app
