package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context) error
	Products(ctx context.Context) error
	Show(ctx context.Context, id int64) error
	Add(ctx context.Context, id int64) error
	Remove(ctx context.Context, id int64) error
	Cart(ctx context.Context) error
	Refresh(ctx context.Context) error
	Login(ctx context.Context) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the storefront CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands and malformed ids are
// reported back to the user. The loop exits on EOF, when ctx is done, or when
// the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts:
//
//	  - help           - show available commands
//	  - home           - featured products
//	  - products | ls  - full catalog
//	  - show <id>      - product details
//	  - add <id>       - add a product to the cart
//	  - remove <id>    - remove every cart entry of a product
//	  - cart           - cart contents and total
//	  - refresh        - reload the catalog
//	  - login          - sign in (not logged in)
//	  - whoami, logout - session commands (logged in)
//	  - exit | quit    - leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, (ls) products, show <id>, add <id>, remove <id>, cart, refresh, whoami, logout, exit")
			} else {
				printlnFn("Available commands: home, (ls) products, show <id>, add <id>, remove <id>, cart, refresh, login, exit")
			}

		case "home":
			_ = a.Home(ctx)

		case "ls", "products":
			_ = a.Products(ctx)

		case "show", "add", "remove":
			id, ok := parseID(cmd, args)
			if !ok {
				continue
			}
			switch cmd {
			case "show":
				_ = a.Show(ctx, id)
			case "add":
				_ = a.Add(ctx, id)
			case "remove":
				_ = a.Remove(ctx, id)
			}

		case "cart":
			_ = a.Cart(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

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

func parseID(cmd string, args []string) (int64, bool) {
	if len(args) == 0 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn(fmt.Sprintf("Invalid product id %q", args[0]))
		return 0, false
	}
	return id, true
}
