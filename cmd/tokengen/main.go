package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"skyward/airport-api/internal/auth"
	"skyward/airport-api/internal/db"
	"skyward/airport-api/internal/db/repositories"
)

// Mints a bearer token for a user, creating the user row if needed.
// Identity is otherwise managed outside this service.
func main() {
	email := flag.String("email", "", "user email (required)")
	staff := flag.Bool("staff", false, "grant staff privileges")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	gdb, err := db.InitPostgresORM(db.DSNFromEnv())
	if err != nil {
		log.Fatalf("connect: %v", err)
	}

	users := repositories.NewUserRepository(gdb)
	user, err := users.FindOrCreateByEmail(context.Background(), *email, *staff)
	if err != nil {
		log.Fatalf("find or create user: %v", err)
	}

	token, err := auth.IssueToken([]byte(secret), user.ID, user.Email, user.IsStaff, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
