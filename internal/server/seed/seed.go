// Package seed implements the out-of-band account creation tool. Admin and
// super-admin accounts have no registration endpoint; operators create them
// with this tool against the server's storage.
package seed

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/flagx"
	"github.com/FYP-S4-34-32/FYP-22-S4-32-ProjectWebsite.io/internal/server/models"
	"golang.org/x/term"
)

// Options are the seeding tool's own flags. Storage flags are read by the
// server config package.
type Options struct {
	Class           models.AccountClass
	Identifier      string
	SecretFromStdin bool
}

// Seeder is implemented by services.AccountService.
type Seeder interface {
	Seed(ctx context.Context, class models.AccountClass, identifier, secret string) (*models.Account, error)
}

// ParseArgs reads -class, -id and -secret-stdin from args, ignoring
// everything else.
func ParseArgs(args []string) (Options, error) {
	args = flagx.FilterArgsWithBools(args, []string{"-class", "-id"}, []string{"-secret-stdin"})

	var (
		opts  Options
		class string
	)
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&class, "class", "admin", "account class: user, admin or superadmin")
	fs.StringVar(&opts.Identifier, "id", "", "account identifier (email)")
	fs.BoolVar(&opts.SecretFromStdin, "secret-stdin", false, "read the secret as one line from stdin")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	c, err := models.ParseAccountClass(class)
	if err != nil {
		return Options{}, err
	}
	opts.Class = c

	if opts.Identifier == "" {
		return Options{}, errors.New("-id is required")
	}
	return opts, nil
}

// readPassword is a seam for tests.
var readPassword = func(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

// ReadSecret reads the secret from in: one line when fromStdin is set,
// otherwise without echo from the terminal behind os.Stdin.
func ReadSecret(fromStdin bool, in io.Reader, prompt io.Writer) (string, error) {
	if fromStdin {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(prompt, "Secret: ")
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(b), nil
}

// Run creates the account and reports it on out.
func Run(ctx context.Context, s Seeder, opts Options, secret string, out io.Writer) error {
	account, err := s.Seed(ctx, opts.Class, opts.Identifier, secret)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created %s %s (id %s)\n", account.Class, account.Identifier, account.ID)
	return nil
}
