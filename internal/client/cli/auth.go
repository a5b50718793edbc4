package cli

import (
	"context"
	"fmt"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readCredentials prompts for an email and a secret. The secret travels
// as a string in the request, so it is converted once here.
func (a *App) readCredentials() (string, string, error) {
	identifier, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", "", err
	}

	secret, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	return identifier, string(secret), nil
}

// Register creates a regular user account.
func (a *App) Register(ctx context.Context) error {
	identifier, secret, err := a.readCredentials()
	if err != nil {
		return err
	}

	account, err := a.client.Register(ctx, identifier, secret)
	if err != nil {
		return err
	}

	a.printAccount("Registered", account)
	return nil
}

// Login checks credentials of an account of the given class. No session is
// kept; the server only confirms the account.
func (a *App) Login(ctx context.Context, class string) error {
	identifier, secret, err := a.readCredentials()
	if err != nil {
		return err
	}

	account, err := a.client.Authenticate(ctx, class, identifier, secret)
	if err != nil {
		return err
	}

	a.printAccount("Authenticated", account)
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Server is up")
	return nil
}

func (a *App) printAccount(verb string, acc *api.Account) {
	fmt.Fprintf(a.out, "%s %s %s (id %s, created %s)\n",
		verb, acc.Class, acc.Identifier, acc.ID, acc.CreatedAt.Format("2006-01-02 15:04:05"))
}
