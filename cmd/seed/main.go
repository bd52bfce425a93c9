package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/mydiaryhq/mydiary-api/config"
	"github.com/mydiaryhq/mydiary-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "John_Doe@example.com"
	password := "its26uv3nf"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (firstname, lastname, email, password)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET firstname=EXCLUDED.firstname
		RETURNING id
	`, "John", "Doe", email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", id, email, password)

	entries := []struct{ title, content string }{
		{"First day", "Started keeping a diary today."},
		{"Groceries", "Remember to buy coffee and flour."},
	}
	for _, e := range entries {
		if _, err := db.Exec(`
			INSERT INTO entries (id, user_id, title, content)
			VALUES ($1, $2, $3, $4)
		`, uuid.NewString(), id, e.title, e.content); err != nil {
			log.Fatalf("failed to seed entry %q: %v", e.title, err)
		}
	}
	fmt.Printf("seeded %d entries\n", len(entries))
}
