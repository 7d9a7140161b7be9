// Package cli provides the interactive gophauth command-line client.
//
// It wires configuration and the HTTP AuthClient into a small REPL that
// mirrors the browser flows: register, login, "who am I" and logout.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
