// Package agentpb holds the remote agent protocol definition. Run go
// generate to produce the Go bindings next to agent.proto; generated
// files are not committed.
package agentpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative agent.proto
