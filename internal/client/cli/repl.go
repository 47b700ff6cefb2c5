package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Generate(ctx context.Context) error
	List(ctx context.Context) error
	Delete(ctx context.Context) error
	Export(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the QRKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Generate, list, delete, and export are always available: anonymously they
// work against the local slot, logged in against the account store. Errors from
// command handlers are ignored here; handlers report their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qrk> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (g)enerate, (l)ist, delete, (e)xport, logout, exit")
			} else {
				printlnFn("Available commands: (g)enerate, (l)ist, delete, (e)xport, register, login, forgot, exit")
			}
		case "generate", "g":
			_ = a.Generate(ctx)
		case "list", "l":
			_ = a.List(ctx)
		case "delete", "del":
			_ = a.Delete(ctx)
		case "export", "e":
			_ = a.Export(ctx)
		case "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in")
				continue
			}
			_ = a.Register(ctx)
		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in")
				continue
			}
			_ = a.Login(ctx)
		case "forgot":
			_ = a.ForgotPassword(ctx)
		case "logout":
			if !a.isLoggedIn() {
				printlnFn("Not logged in")
				continue
			}
			_ = a.Logout(ctx)
		case "exit", "quit":
			return
		default:
			printlnFn(fmt.Sprintf("Unknown command: %s (try 'help')", cmd))
		}
	}
}
