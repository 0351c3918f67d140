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
	Login(ctx context.Context) error
	SignUp(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	ListUsers(ctx context.Context, page, size int) error
	ShowUser(ctx context.Context, key string) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context, key string) error
	DeleteUser(ctx context.Context, key string) error

	ListVehicles(ctx context.Context, page, size int) error
	ShowVehicle(ctx context.Context, key string) error
	AddVehicle(ctx context.Context) error
	EditVehicle(ctx context.Context, key string) error
	DeleteVehicle(ctx context.Context, key string) error
}

const (
	helpAnonymous = "Available commands: login, signup, whoami, exit"
	helpLoggedIn  = "Available commands: users [page] [size], user <key>, adduser, edituser <key>, deluser <key>, " +
		"vehicles [page] [size], vehicle <key>, addvehicle, editvehicle <key>, delvehicle <key>, whoami, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the vehiclehub CLI.
//
// It reads a line from r, parses the first token as the command and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
// Command prompts read from the same reader, so r must be shared with 'a'.
//
// Prompt & Commands
//
// The prompt is "vh> <status> >" and accepts:
//
//	help                      show available commands
//	login | signup | logout   manage the session
//	whoami                    show the signed-in identity
//	users [page] [size]       list users
//	user <key>                show one user
//	adduser | edituser <key> | deluser <key>
//	vehicles [page] [size]    list vehicles
//	vehicle <key>             show one vehicle
//	addvehicle | editvehicle <key> | delvehicle <key>
//	exit | quit               leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("vh> %s > ", statusFn()))
		line, err := r.ReadString('\n')
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
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.SignUp(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "users", "vehicles":
			page, size, err := parsePaging(args)
			if err != nil {
				printlnFn(fmt.Sprintf("Usage: %s [page] [size]", cmd))
				continue
			}
			if cmd == "users" {
				_ = a.ListUsers(ctx, page, size)
			} else {
				_ = a.ListVehicles(ctx, page, size)
			}

		case "adduser":
			_ = a.AddUser(ctx)

		case "addvehicle":
			_ = a.AddVehicle(ctx)

		case "user", "edituser", "deluser", "vehicle", "editvehicle", "delvehicle":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <key>", cmd))
				continue
			}
			dispatchKeyed(ctx, a, cmd, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func dispatchKeyed(ctx context.Context, a execIface, cmd, key string) {
	switch cmd {
	case "user":
		_ = a.ShowUser(ctx, key)
	case "edituser":
		_ = a.EditUser(ctx, key)
	case "deluser":
		_ = a.DeleteUser(ctx, key)
	case "vehicle":
		_ = a.ShowVehicle(ctx, key)
	case "editvehicle":
		_ = a.EditVehicle(ctx, key)
	case "delvehicle":
		_ = a.DeleteVehicle(ctx, key)
	}
}

// parsePaging reads optional "[page] [size]" arguments. Missing values are
// zero; a zero size means "use the configured default".
func parsePaging(args []string) (page, size int, err error) {
	if len(args) > 2 {
		return 0, 0, errors.New("too many arguments")
	}
	vals := [2]int{}
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("invalid number %q", s)
		}
		vals[i] = n
	}
	return vals[0], vals[1], nil
}
