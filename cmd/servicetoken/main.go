// Command servicetoken mints a bearer token for an admin API caller.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"invite-role-bridge/internal/pkg/jwt"
)

func main() {
	subject := flag.String("sub", "", "caller name stored in the token subject (e.g. storefront)")
	ttl := flag.Duration("ttl", 720*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(2)
	}

	token, err := jwt.NewService(secret, *ttl).GenerateToken(*subject)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to generate token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
