// Package api declares the AccountService wire contract shared by the
// server and the client: messages, the gRPC service descriptor, the server
// registration helper and the client stub. Messages are plain structs that
// travel as protobuf messages of the orgmanager/account.proto schema.
package api

import (
	"time"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type RegisterRequest struct {
	Identifier string
	Secret     string
}

// AuthenticateRequest names the account class as "user", "admin" or
// "superadmin".
type AuthenticateRequest struct {
	Class      string
	Identifier string
	Secret     string
}

// Account is the public view of a stored account. It never carries the
// secret or its hash.
type Account struct {
	ID         string
	Class      string
	Identifier string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type AccountResponse struct {
	Account *Account
}

type PingRequest struct{}

type PingResponse struct {
	Status string
}

func (r *RegisterRequest) toProto() *dynamicpb.Message {
	m := dynamicpb.NewMessage(registerRequestDesc)
	if r != nil {
		setString(m, "identifier", r.Identifier)
		setString(m, "secret", r.Secret)
	}
	return m
}

func registerRequestFromProto(m protoreflect.Message) *RegisterRequest {
	return &RegisterRequest{
		Identifier: getString(m, "identifier"),
		Secret:     getString(m, "secret"),
	}
}

func (r *AuthenticateRequest) toProto() *dynamicpb.Message {
	m := dynamicpb.NewMessage(authenticateRequestDesc)
	if r != nil {
		setString(m, "class", r.Class)
		setString(m, "identifier", r.Identifier)
		setString(m, "secret", r.Secret)
	}
	return m
}

func authenticateRequestFromProto(m protoreflect.Message) *AuthenticateRequest {
	return &AuthenticateRequest{
		Class:      getString(m, "class"),
		Identifier: getString(m, "identifier"),
		Secret:     getString(m, "secret"),
	}
}

func (a *Account) toProto() *dynamicpb.Message {
	m := dynamicpb.NewMessage(accountDesc)
	setString(m, "id", a.ID)
	setString(m, "class", a.Class)
	setString(m, "identifier", a.Identifier)
	setTime(m, "created_at", a.CreatedAt)
	setTime(m, "updated_at", a.UpdatedAt)
	return m
}

func accountFromProto(m protoreflect.Message) *Account {
	return &Account{
		ID:         getString(m, "id"),
		Class:      getString(m, "class"),
		Identifier: getString(m, "identifier"),
		CreatedAt:  getTime(m, "created_at"),
		UpdatedAt:  getTime(m, "updated_at"),
	}
}

func (r *AccountResponse) toProto() *dynamicpb.Message {
	m := dynamicpb.NewMessage(accountResponseDesc)
	if r != nil && r.Account != nil {
		m.Set(accountResponseDesc.Fields().ByName("account"), protoreflect.ValueOfMessage(r.Account.toProto()))
	}
	return m
}

func accountResponseFromProto(m protoreflect.Message) *AccountResponse {
	fd := m.Descriptor().Fields().ByName("account")
	if !m.Has(fd) {
		return &AccountResponse{}
	}
	return &AccountResponse{Account: accountFromProto(m.Get(fd).Message())}
}

func (r *PingRequest) toProto() *dynamicpb.Message {
	return dynamicpb.NewMessage(pingRequestDesc)
}

func (r *PingResponse) toProto() *dynamicpb.Message {
	m := dynamicpb.NewMessage(pingResponseDesc)
	if r != nil {
		setString(m, "status", r.Status)
	}
	return m
}

func pingResponseFromProto(m protoreflect.Message) *PingResponse {
	return &PingResponse{Status: getString(m, "status")}
}

func setString(m protoreflect.Message, name protoreflect.Name, v string) {
	if v == "" {
		return
	}
	m.Set(m.Descriptor().Fields().ByName(name), protoreflect.ValueOfString(v))
}

func getString(m protoreflect.Message, name protoreflect.Name) string {
	return m.Get(m.Descriptor().Fields().ByName(name)).String()
}

func setTime(m protoreflect.Message, name protoreflect.Name, t time.Time) {
	if t.IsZero() {
		return
	}
	m.Set(m.Descriptor().Fields().ByName(name), protoreflect.ValueOfMessage(timestamppb.New(t).ProtoReflect()))
}

// getTime reads a google.protobuf.Timestamp field by its field names, so it
// works for both generated and dynamic sub-messages. Unset is the zero time.
func getTime(m protoreflect.Message, name protoreflect.Name) time.Time {
	fd := m.Descriptor().Fields().ByName(name)
	if !m.Has(fd) {
		return time.Time{}
	}
	ts := m.Get(fd).Message()
	fields := ts.Descriptor().Fields()
	return time.Unix(ts.Get(fields.ByName("seconds")).Int(), ts.Get(fields.ByName("nanos")).Int()).UTC()
}
