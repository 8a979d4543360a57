// Package driving defines the interfaces through which the outside world
// drives the core: indexing, synchronisation, and question answering.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; the CLI consumes them.
package driving
