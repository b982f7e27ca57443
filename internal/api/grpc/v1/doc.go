// Package v1 serves the key and cipher services over gRPC using the rsavault.v1 protobuf
// API, and registers the gRPC-Gateway handlers generated from its HTTP annotations.
package v1
