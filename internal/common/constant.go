// Package common contains shared constants and sentinel errors used across
// orgmanager components.
package common

// RequestIDHeaderName is the gRPC metadata key carrying a caller supplied
// request id. The server echoes it in its logs.
const RequestIDHeaderName = "x-request-id"
