package main

import (
	"context"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/liris-lib/library-service/config"
	"github.com/liris-lib/library-service/internal/model"
	"github.com/liris-lib/library-service/internal/repository"
	"github.com/liris-lib/library-service/migrations"
	"github.com/liris-lib/library-service/pkg/logger"
	"github.com/liris-lib/library-service/pkg/postgres"
)

func openRepo(ctx context.Context, cfg *config.Config) (*sqlx.DB, repository.Repository, error) {
	db, err := postgres.Connect(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	repo, err := repository.NewRepository(db, logger.NewLogger(cfg.Log, "libctl"))
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, repo, nil
}

// ensureDatabase creates the target database when it does not exist yet.
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	adminCfg := cfg.Database
	adminCfg.Name = "postgres"
	db, err := postgres.Connect(ctx, &adminCfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	q := `select exists(select 1 from pg_database where datname = $1)`
	if err := db.QueryRowContext(ctx, q, cfg.Database.Name).Scan(&exists); err != nil {
		return err
	}
	if exists {
		fmt.Printf("Database %q already exists\n", cfg.Database.Name)
		return nil
	}
	if _, err := db.ExecContext(ctx, createDatabaseStmt(cfg.Database.Name)); err != nil {
		return err
	}
	fmt.Printf("Database %q created\n", cfg.Database.Name)
	return nil
}

// createDatabaseStmt quotes the database name with Postgres identifier
// rules (doubled quotes), not Go string-literal escaping.
func createDatabaseStmt(name string) string {
	return "create database " + pgx.Identifier{name}.Sanitize()
}

func newInitCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database and apply schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := ensureDatabase(ctx, cfg); err != nil {
				return err
			}
			db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
			if err != nil {
				return err
			}
			defer db.Close()
			fmt.Println("Database initialization complete")
			return nil
		},
	}
}

type counter struct {
	label string
	table string
	where sq.Sqlizer
}

var counters = []counter{
	{"Total Publications", "library.publication", nil},
	{"Total Copies", "library.publication_copy", nil},
	{"  - Available", "library.publication_copy", sq.Eq{"status": model.CopyOnRack}},
	{"  - Borrowed", "library.publication_copy", sq.Eq{"status": model.CopyIssued}},
	{"  - Lost", "library.publication_copy", sq.Eq{"status": model.CopyLost}},
	{"Total Users", "library.library_user", nil},
	{"Active Borrowings", "library.borrowing", sq.Expr("return_date is null")},
	{"Total Labs", "library.lab", nil},
	{"Pending Proposals", "library.proposed_publication", sq.Eq{"status": model.ProposalPending}},
}

func newStatsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print library statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, repo, err := openRepo(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			values := make([]int, len(counters))
			gg, gctx := errgroup.WithContext(ctx)
			for i, cnt := range counters {
				i, cnt := i, cnt
				gg.Go(func() error {
					n, err := repo.CountRows(gctx, cnt.table, cnt.where)
					values[i] = n
					return err
				})
			}
			if err := gg.Wait(); err != nil {
				return err
			}

			fmt.Println("==================================================")
			fmt.Println("LIBRARY DATABASE STATISTICS")
			fmt.Println("==================================================")
			for i, cnt := range counters {
				fmt.Printf("%-22s %10d\n", cnt.label+":", values[i])
			}
			fmt.Println("==================================================")
			return nil
		},
	}
}

func newOverdueCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List overdue borrowings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, repo, err := openRepo(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			overdues, err := repo.ListOverdue(ctx)
			if err != nil {
				return err
			}
			if len(overdues) == 0 {
				fmt.Println("No overdue books found")
				return nil
			}
			fmt.Printf("%-5s %-30s %-30s %-12s\n", "ID", "User", "Title", "Days Overdue")
			for _, o := range overdues {
				fmt.Printf("%-5d %-30.28s %-30.28s %-12d\n", o.IDBorrowing, o.Name, o.Title, o.DaysOverdue)
			}
			return nil
		},
	}
}

func newTestBorrowCmd(cfg *config.Config) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "test-borrow",
		Short: "Add random test borrowings over available copies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, repo, err := openRepo(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			added, err := repo.AddTestBorrowings(ctx, count)
			if err != nil {
				return err
			}
			fmt.Printf("Added %d test borrowings\n", added)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 5, "number of borrowings to add")
	return cmd
}

func newReturnCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "return <borrowing-id>",
		Short: "Close a borrowing by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid borrowing id %q", args[0])
			}
			ctx := cmd.Context()
			db, repo, err := openRepo(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if _, err := repo.CloseBorrowing(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Book returned (borrowing ID: %d)\n", id)
			return nil
		},
	}
}
