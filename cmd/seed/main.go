package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"happyhouse/internal/database"
	"happyhouse/internal/domain"
	"happyhouse/internal/repository"
)

// Seeds a local database with a demo owner and a block of vacant rooms.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "happyhouse.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM revenue_buckets")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM rentals")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	owner := &domain.User{
		Email:        "owner@happyhouse.local",
		PasswordHash: string(hash),
		DisplayName:  "Demo Owner",
	}
	if err := repository.NewUserRepository(db).Create(ctx, owner); err != nil {
		log.Fatal("seed owner failed:", err)
	}

	roomRepo := repository.NewRoomRepository(db)
	for house := 1; house <= 2; house++ {
		for n := 1; n <= 5; n++ {
			room := &domain.Room{
				OwnerID: owner.ID,
				Name:    fmt.Sprintf("%d0%d", house, n),
				House:   fmt.Sprintf("House %d", house),
				Status:  domain.RoomVacant,
				Tenant:  domain.NoTenant,
				Price:   200000,
			}
			if err := roomRepo.Create(ctx, room); err != nil {
				log.Fatal("seed room failed:", err)
			}
		}
	}

	log.Printf("seed completed: owner=%s rooms=10", owner.Email)
}
