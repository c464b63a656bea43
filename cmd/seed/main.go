// Command seed prepares a database for local development: it issues a
// verification code for an operator-supplied email (useful when no mail
// pipeline exists) and can insert demo instructions through the regular
// short-code allocator.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"classdesk/internal/config"
	"classdesk/internal/db"
	"classdesk/internal/model"
	"classdesk/internal/repository"
	"classdesk/internal/service"
	"classdesk/internal/shortid"
)

var demoInstructions = []string{
	"Read chapter 4 and summarize the key points",
	"Finish the fractions worksheet",
	"Prepare three questions for tomorrow's discussion",
}

func main() {
	email := flag.String("email", "", "issue a verification code for this email")
	demo := flag.Bool("demo", false, "insert demo instructions")
	flag.Parse()

	if *email == "" && !*demo {
		log.Fatal("nothing to do: pass -email and/or -demo")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Credential{},
		&model.VerificationCode{},
		&model.Instruction{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if *email != "" {
		code, err := issueCode(ctx, repository.NewVerificationRepository(gormDB), *email, cfg.VerifyCodeTTL)
		if err != nil {
			log.Fatalf("Failed to issue verification code: %v", err)
		}
		log.Printf("Verification code for %s: %s (valid %s)", *email, code, cfg.VerifyCodeTTL)
	}

	if *demo {
		instructionService := service.NewInstructionService(repository.NewInstructionRepository(gormDB))
		for _, text := range demoInstructions {
			id, err := instructionService.Create(ctx, text)
			if err != nil {
				log.Fatalf("Failed to seed instruction: %v", err)
			}
			log.Printf("Seeded instruction %s: %q", id, text)
		}
	}

	log.Println("Seed completed successfully!")
}

// issueCode writes a verification code row directly, bypassing the
// resend cooldown the HTTP endpoint enforces.
func issueCode(ctx context.Context, repo repository.VerificationRepository, email string, ttl time.Duration) (string, error) {
	code, err := shortid.New(6)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}

	v := &model.VerificationCode{
		Code:   code,
		Email:  email,
		Expire: time.Now().Add(ttl).Unix(),
	}
	if err := repo.Create(ctx, v); err != nil {
		return "", fmt.Errorf("store code: %w", err)
	}
	return code, nil
}
