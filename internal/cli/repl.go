package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/rescuemap/internal/guard"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	GuardState() guard.State
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Home(ctx context.Context) error
	Map(ctx context.Context, args []string) error
	Resolve(ctx context.Context, args []string) error
	Contact(ctx context.Context) error
	Feedback(ctx context.Context) error
}

// protectedViews names the commands that sit behind the route guard.
var protectedViews = map[string]bool{
	"home":     true,
	"map":      true,
	"resolve":  true,
	"contact":  true,
	"feedback": true,
	"logout":   true,
}

// runREPL starts a read–eval–print loop over the application's views.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user (the catch-all not-found view). The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Guarded dispatch: commands in protectedViews first consult the route
// guard. While the session restore is pending the REPL renders a loading
// placeholder instead of the view; without a logged-in user it redirects
// to the login view. Only an authorized guard lets the view render.
//
// Any errors returned by command handlers are ignored here; handlers
// print their own notices. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rescue %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if protectedViews[cmd] {
			switch a.GuardState() {
			case guard.Loading:
				printlnFn("Loading session...")
				continue
			case guard.Unauthorized:
				printlnFn("Please log in to continue.")
				_ = a.Login(ctx)
				continue
			}
		}

		switch cmd {
		case "help":
			if a.GuardState() == guard.Authorized {
				printlnFn("Available commands: home, map [all|high|low], resolve <id>, contact, feedback, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "home":
			_ = a.Home(ctx)

		case "map":
			_ = a.Map(ctx, args)

		case "resolve":
			_ = a.Resolve(ctx, args)

		case "contact":
			_ = a.Contact(ctx)

		case "feedback":
			_ = a.Feedback(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
