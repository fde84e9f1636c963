// Package oracle defines the interface the solver's "advanced mode"
// uses to consult an external reference collection of previously solved
// boards. The collection itself (a distributed cache and its remote
// service) is out of scope for this module (spec.md §1): only the
// interface and a no-op implementation live here.
package oracle
