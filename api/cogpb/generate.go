// Package cogpb holds the protobuf messages and gRPC service exchanged
// between an orchestrator and a cog.
package cogpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative cog.proto
