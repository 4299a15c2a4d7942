// Package observability exposes Prometheus metrics for the toolkit's
// serving surfaces: sequences processed, symbols consumed, and
// definition compiles.
package observability
