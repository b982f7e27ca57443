// Package app wires key generation, the key store and the file cipher into the services
// consumed by the REST API and the CLI.
package app
