package main

import (
	"context"
	"log"
	"os"

	"happyhouse/internal/database"
	"happyhouse/internal/repository"
)

// Rebuilds the monthly revenue projection from the paid invoice log. The
// projection is a cache; run this whenever it drifts from the ledger.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx := context.Background()

	invoices, err := repository.NewInvoiceRepository(db).ListAllPaid(ctx)
	if err != nil {
		log.Fatalf("loading paid invoices failed: %v", err)
	}

	if err := repository.NewRevenueRepository(db).Rebuild(ctx, invoices); err != nil {
		log.Fatalf("projection rebuild failed: %v", err)
	}

	log.Printf("revenue rollup completed: invoices=%d", len(invoices))
}
