// Package cli provides the interactive vehiclehub command-line client.
//
// It wires configuration, the persisted session, the API client and the
// user/vehicle stores behind a small REPL. Typical flow: restore the
// previous session (if any), then execute user commands until exit.
//
// Key features:
//   - Login / SignUp / Logout / WhoAmI
//   - List, show, add, edit and delete users
//   - List, show, add, edit and delete vehicles
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
