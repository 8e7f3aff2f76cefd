// Command recalc-balances rebuilds every account balance of one company
// from its opening balance and transaction history. It is intended for
// operators repairing drift left by pre-atomic writes, invoked manually
// or by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/adapter/postgres"
	"github.com/ledgerline/ledgerline-backend/internal/adapter/postgres/account"
	"github.com/ledgerline/ledgerline-backend/internal/app"
	"github.com/ledgerline/ledgerline-backend/internal/config"
)

func main() {
	companyFlag := flag.String("company", "", "company ID whose balances to recalculate")
	flag.Parse()

	companyID, err := uuid.Parse(*companyFlag)
	if err != nil {
		log.Fatalf("invalid -company flag: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	accountRepo := account.New(pool)

	updated, err := accountRepo.RecalculateBalances(ctx, companyID)
	if err != nil {
		logger.Error("recalculate failed",
			slog.String("error", err.Error()),
			slog.String("company_id", companyID.String()),
		)
		os.Exit(1)
	}

	logger.Info("recalculate completed",
		slog.Int("updated", updated),
		slog.String("company_id", companyID.String()),
	)
}
