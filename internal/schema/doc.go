// Package schema defines the blueprint document model and its structural
// validator. The `schema.Document` is the single source of truth for the
// `graph`, `command` and `access` packages.
//
// Validation here is purely structural (shapes, enums, id formats). Graph
// level checks such as cycle detection and reachability live in the `graph`
// package.
package schema
