// Copyright (c) 2025 Community Voice Project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/alfa2267/community-voice/auth"
	"github.com/alfa2267/community-voice/cliparse"
)

// HashPassword handles the hash-password subcommand. It prompts for a
// username and password and writes the reset-guard auth file.
func HashPassword(args []string) {
	fs := flag.NewFlagSet("hash-password", flag.ExitOnError)
	overwrite := fs.Bool("overwrite", false, "Overwrite existing auth file without asking")
	authFile := fs.String("auth-file", "", "Path to auth file (default: ./auth.secret)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: community-voice hash-password [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Creates an auth file with hashed password (Argon2id) guarding POST /reset.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  AUTH_FILE    Path to auth file (default: ./auth.secret)\n")
	}
	fs.Parse(args)

	path := *authFile
	if path == "" {
		path = os.Getenv("AUTH_FILE")
	}
	if path == "" {
		path = cliparse.DefaultAuthFile
	}

	fmt.Print("Enter username: ")
	var username string
	if _, err := fmt.Scanln(&username); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading username: %v\n", err)
		os.Exit(1)
	}
	if username == "" {
		fmt.Fprintln(os.Stderr, "Username cannot be empty")
		os.Exit(1)
	}

	password := readPassword("Enter password:   ")
	passwordConfirm := readPassword("Confirm password: ")

	if password == "" {
		fmt.Fprintln(os.Stderr, "Password cannot be empty")
		os.Exit(1)
	}
	if password != passwordConfirm {
		fmt.Fprintln(os.Stderr, "Passwords do not match")
		os.Exit(1)
	}

	if err := auth.CreateAuthFile(path, username, password, *overwrite); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Auth file created: %s (mode: 0400 read-only)\n", path)
	fmt.Printf("Username: %s\n", username)
}

// readPassword reads a password without echoing it to the terminal.
func readPassword(prompt string) string {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		os.Exit(1)
	}
	return string(password)
}
