package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/api"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/common"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/logging"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeAccounts struct {
	out *models.Account
	err error

	gotClass models.AccountClass
	gotID    string
}

func (f *fakeAccounts) Register(ctx context.Context, identifier, secret string) (*models.Account, error) {
	f.gotID = identifier
	return f.out, f.err
}

func (f *fakeAccounts) Authenticate(ctx context.Context, class models.AccountClass, identifier, secret string) (*models.Account, error) {
	f.gotClass, f.gotID = class, identifier
	return f.out, f.err
}

func newTestServer(svc AccountService) *GRPCServer {
	return NewGRPCServer("", logging.Nop(), svc, 0)
}

func TestRegister_ReturnsPublicAccount(t *testing.T) {
	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	f := &fakeAccounts{out: &models.Account{
		ID: "id-1", Class: models.ClassUser, Identifier: "a@b.com", SecretHash: "$2a$10$hash",
		CreatedAt: ts, UpdatedAt: ts,
	}}

	resp, err := newTestServer(f).Register(context.Background(), &api.RegisterRequest{Identifier: "a@b.com", Secret: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, &api.Account{ID: "id-1", Class: "user", Identifier: "a@b.com", CreatedAt: ts, UpdatedAt: ts}, resp.Account)
	assert.Equal(t, "a@b.com", f.gotID)
}

func TestAuthenticate_ParsesClass(t *testing.T) {
	f := &fakeAccounts{out: &models.Account{ID: "x", Class: models.ClassSuperAdmin}}

	_, err := newTestServer(f).Authenticate(context.Background(), &api.AuthenticateRequest{Class: "super-admin", Identifier: "r@o.com", Secret: "s"})
	require.NoError(t, err)
	assert.Equal(t, models.ClassSuperAdmin, f.gotClass)
}

func TestAuthenticate_BadClassNeverReachesService(t *testing.T) {
	f := &fakeAccounts{err: errors.New("must not be called")}

	_, err := newTestServer(f).Authenticate(context.Background(), &api.AuthenticateRequest{Class: "guest"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Empty(t, f.gotID)
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{common.ErrMissingFields, codes.InvalidArgument, "all fields must be filled"},
		{common.ErrInvalidIdentifier, codes.InvalidArgument, "email is not valid"},
		{common.ErrWeakSecret, codes.InvalidArgument, "password not strong enough"},
		{common.ErrDuplicateIdentifier, codes.AlreadyExists, "email already in use"},
		{common.ErrInvalidCredentials, codes.Unauthenticated, "invalid login credentials"},
		{fmt.Errorf("%w: 5", common.ErrUnknownAccountClass), codes.InvalidArgument, "unknown account class"},
		{fmt.Errorf("lookup: %w", context.DeadlineExceeded), codes.DeadlineExceeded, "lookup: context deadline exceeded"},
		{errors.New("db error: connection refused"), codes.Internal, "internal error"},
	}

	s := newTestServer(&fakeAccounts{})
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			st := status.Convert(s.toStatus(context.Background(), tt.err))
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}

func TestPing(t *testing.T) {
	resp, err := newTestServer(&fakeAccounts{}).Ping(context.Background(), &api.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}
