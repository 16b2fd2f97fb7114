package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Calendar(ctx context.Context) error
	Pick(ctx context.Context, day string) error
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context) error
	Theme(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the GophDiary CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, on a cancelled context, or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - login          authenticate
//	  - theme          toggle light/dark
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - add            add an entry
//	  - list | l       list entries
//	  - calendar | cal show the current month
//	  - pick <day>     select a day of the current month for new entries
//	  - delete <id>    delete an entry
//	  - share          copy all entries to the clipboard
//	  - theme          toggle light/dark
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("diary %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if handled, quit := dispatchCommon(ctx, a, cmd); handled {
			if quit {
				return
			}
			continue
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "login":
				_ = a.Login(ctx)
			case "add", "l", "list", "cal", "calendar", "pick", "delete", "share", "logout":
				printlnFn("Please login first")
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "login":
			printlnFn("Already logged in, logout first")

		case "add":
			_ = a.Add(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "cal", "calendar":
			_ = a.Calendar(ctx)

		case "pick":
			if len(args) == 0 {
				printlnFn("Usage: pick <day>")
				continue
			}
			_ = a.Pick(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "share":
			_ = a.Share(ctx)

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// dispatchCommon runs the commands available in both states.
func dispatchCommon(ctx context.Context, a execIface, cmd string) (handled, quit bool) {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: add, (l)ist, (cal)endar, pick <day>, delete <id>, share, theme, logout, exit")
		} else {
			printlnFn("Available commands: login, theme, exit")
		}
		return true, false

	case "theme":
		_ = a.Theme(ctx)
		return true, false

	case "exit", "quit":
		printlnFn("Bye!")
		return true, true
	}
	return false, false
}
