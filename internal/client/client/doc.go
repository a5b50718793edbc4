// Package client talks to the orgmanager account service over gRPC.
//
// GRPCClient sends every call with the JSON content-subtype, a fresh
// x-request-id header and the configured per-call timeout. Errors come back
// as the common sentinels (common.ErrInvalidCredentials and friends) when the
// server reported a known kind, ErrUnavailable when the server could not be
// reached in time, and a wrapped status error otherwise.
package client
