// Package cli is responsible for parsing command-line arguments, reading the
// puzzle from the user, enforcing the classic game's number count and
// rendering results. It translates flags into the application's configuration.
package cli
