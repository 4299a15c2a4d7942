/*
Package ports defines the interfaces between the automat core and its
adapters, following Hexagonal Architecture principles.

Adapters (memory, file, redis) implement these interfaces; the exported
contract suites verify that every implementation honors the same
semantics.
*/
package ports
