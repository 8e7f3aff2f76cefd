package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ledgerline/ledgerline-backend/internal/adapter/postgres"
	accountrepo "github.com/ledgerline/ledgerline-backend/internal/adapter/postgres/account"
	companyrepo "github.com/ledgerline/ledgerline-backend/internal/adapter/postgres/company"
	customerrepo "github.com/ledgerline/ledgerline-backend/internal/adapter/postgres/customer"
	invoicerepo "github.com/ledgerline/ledgerline-backend/internal/adapter/postgres/invoice"
	leadrepo "github.com/ledgerline/ledgerline-backend/internal/adapter/postgres/lead"
	transactionrepo "github.com/ledgerline/ledgerline-backend/internal/adapter/postgres/transaction"
	userrepo "github.com/ledgerline/ledgerline-backend/internal/adapter/postgres/user"
	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/config"
	accountsvc "github.com/ledgerline/ledgerline-backend/internal/service/account"
	customersvc "github.com/ledgerline/ledgerline-backend/internal/service/customer"
	invoicesvc "github.com/ledgerline/ledgerline-backend/internal/service/invoice"
	leadsvc "github.com/ledgerline/ledgerline-backend/internal/service/lead"
	transactionsvc "github.com/ledgerline/ledgerline-backend/internal/service/transaction"
	usersvc "github.com/ledgerline/ledgerline-backend/internal/service/user"
	gqltransport "github.com/ledgerline/ledgerline-backend/internal/transport/graphql"
	"github.com/ledgerline/ledgerline-backend/internal/transport/graphql/dataloader"
	"github.com/ledgerline/ledgerline-backend/internal/transport/middleware"
	"github.com/ledgerline/ledgerline-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// repository, service, and transport layers, and serves HTTP until the
// context is canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	accounts := accountrepo.New(pool)
	companies := companyrepo.New(pool)
	customers := customerrepo.New(pool)
	invoices := invoicerepo.New(pool)
	leads := leadrepo.New(pool)
	transactions := transactionrepo.New(pool)
	users := userrepo.New(pool)

	txManager := postgres.NewTxManager(pool)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	history := invoicesvc.NewHistoryRecorder(logger, invoices, cfg.History.BufferSize, cfg.History.WriteTimeout)
	defer history.Close()

	accountService := accountsvc.NewService(logger, accounts, txManager, cfg.Billing.DefaultCurrency)
	transactionService := transactionsvc.NewService(logger, transactions, accounts, txManager)
	customerService := customersvc.NewService(logger, customers, invoices, txManager)
	leadService := leadsvc.NewService(logger, leads, customers, txManager)
	invoiceService := invoicesvc.NewService(logger, invoices, customers, history, txManager, invoicesvc.Config{
		DefaultCurrency: cfg.Billing.DefaultCurrency,
		DueInDays:       cfg.Billing.DueInDays,
		NumberPrefix:    cfg.Billing.NumberPrefix,
	})
	userService := usersvc.NewService(logger, users, companies, hasher, txManager)

	resolver := gqltransport.NewResolver(
		logger,
		accountService,
		transactionService,
		customerService,
		leadService,
		invoiceService,
		userService,
	)
	schema, err := gqltransport.NewSchema(resolver)
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}

	loaderRepos := &dataloader.Repos{
		User:     users,
		Account:  accounts,
		Customer: customers,
		Lead:     leads,
		Invoice:  invoices,
	}

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		middleware.Auth(jwtManager),
		dataloader.Middleware(loaderRepos),
	)

	health := rest.NewHealthHandler(pool, BuildVersion())

	mux := http.NewServeMux()
	mux.Handle("/graphql", chain(gqltransport.NewHandler(schema, cfg.GraphQL)))
	mux.HandleFunc("/health", health.Health)
	mux.HandleFunc("/live", health.Live)
	mux.HandleFunc("/ready", health.Ready)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
