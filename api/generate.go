// Package api holds the protobuf sources. Generated code lands in
// internal/api/<service>/v1 and is not committed.
package api

//go:generate protoc --proto_path=proto --go_out=../.. --go_opt=module=github.com/luxstudio/storefront-core --go-grpc_out=../.. --go-grpc_opt=module=github.com/luxstudio/storefront-core proto/identity/v1/identity.proto proto/storefront/v1/storefront.proto
