// Package cli provides the interactive orgmanager command-line client.
//
// It connects to the account service and runs a small REPL:
//
//	register                      create a regular user account
//	login [user|admin|superadmin] check credentials of an account (default user)
//	ping                          check that the server answers
//	help                          list commands
//	exit | quit                   leave
//
// Secrets are read from the terminal without echo.
package cli
