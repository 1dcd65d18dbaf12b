package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/edushare/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	hasRole(ctx context.Context, r models.Role) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Home(ctx context.Context) error
	Search(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error

	Mine(ctx context.Context) error
	Upload(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Approve(ctx context.Context, args []string) error
}

// requiredRole lists the commands that are only offered to one role.
var requiredRole = map[string]models.Role{
	"mine":    models.RoleTeacher,
	"upload":  models.RoleTeacher,
	"delete":  models.RoleTeacher,
	"approve": models.RoleAdmin,
}

// helpText lists the commands available in the current session state.
func helpText(ctx context.Context, a execIface) string {
	cmds := []string{"help", "catalog", "search", "show <id>", "export <file.html>"}
	if !a.isLoggedIn(ctx) {
		cmds = append(cmds, "login", "register")
	} else {
		if a.hasRole(ctx, models.RoleTeacher) {
			cmds = append(cmds, "mine", "upload", "delete <id>")
		}
		if a.hasRole(ctx, models.RoleAdmin) {
			cmds = append(cmds, "approve <id>")
		}
		cmds = append(cmds, "whoami", "logout")
	}
	cmds = append(cmds, "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}

// runREPL starts a simple read–eval–print loop for the EduShare CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, on context cancellation, or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn). Commands:
//
//	Everyone:
//	  - help              - show available commands
//	  - catalog | home    - featured resources
//	  - search            - search resources (interactive filters)
//	  - show <id>         - resource details
//	  - export <file>     - write the current view as HTML
//	  - exit | quit       - leave the program
//
//	Logged out: login, register
//	Logged in:  whoami, logout
//	Teacher:    mine, upload, delete <id>
//	Admin:      approve <id>
//
// Role-gated commands are refused unless the stored session has the role.
// Errors returned by command handlers are not fatal: handlers report them
// to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("edushare %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if role, gated := requiredRole[cmd]; gated && !a.hasRole(ctx, role) {
			printlnFn(fmt.Sprintf("Command %q is only available to %s accounts.", cmd, role))
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpText(ctx, a))

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "catalog", "home":
			_ = a.Home(ctx)

		case "search":
			_ = a.Search(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "export":
			_ = a.Export(ctx, args)

		case "mine":
			_ = a.Mine(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "delete":
			_ = a.Delete(ctx, args)

		case "approve":
			_ = a.Approve(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// Root prints the greeting, renders the home view and runs the REPL.
func (a *App) Root(ctx context.Context) error {
	printlnFn("Welcome to EduShare CLI (type 'help' for commands)")
	if sess := a.session(ctx); sess != nil {
		a.notifier.Info(fmt.Sprintf("Logged in as %s.", sess.User.Username))
	}

	_ = a.Home(ctx)

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
	return nil
}
