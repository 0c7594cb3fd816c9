// Package analyze bridges Go source into class specifications.
//
// It loads packages via golang.org/x/tools/go/packages and converts exported
// struct declarations into the declared-class model the resolution engine
// consumes: basic kinds map to the fixed-width primitives, pointers to
// basics map to their boxed counterparts, string to text, []byte to blob,
// slices to arrays, maps to the parameterized map interface, and named
// structs to classes reachable through the native protocol.
//
// Unsupported Go shapes surface as diagnostics, never as panics.
package analyze
