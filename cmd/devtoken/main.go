// Command devtoken prints a bearer token for a username, signed with the
// server's configured JWT secret. It stands in for a login flow during
// local development.
//
//	go run ./cmd/devtoken -user alice [-config auction.yaml]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"auction-house/internal/auth"
	"auction-house/internal/config"
)

func main() {
	fs := flag.NewFlagSet("devtoken", flag.ExitOnError)
	user := fs.String("user", "", "username to issue the token for")
	ttl := fs.Duration("ttl", 0, "token lifetime (defaults to the configured token TTL)")
	configPath := fs.String("config", "", "path to the server YAML config file")
	_ = fs.Parse(os.Args[1:])

	if *user == "" {
		fmt.Fprintln(os.Stderr, "devtoken: -user is required")
		os.Exit(2)
	}

	var args []string
	if *configPath != "" {
		args = []string{"-config", *configPath}
	}
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %v\n", err)
		os.Exit(1)
	}

	lifetime := cfg.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer).GenerateToken(*user, lifetime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", token)
	fmt.Fprintf(os.Stderr, "expires %s\n", time.Now().Add(lifetime).UTC().Format(time.RFC3339))
}
