package cli

import (
	"context"
	"fmt"
)

// Root runs the REPL on the app's input until the user leaves.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to orgmanager CLI (type 'help' for commands)")
	runREPL(ctx, a, a.reader)
}
