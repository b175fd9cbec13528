package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"staffing/cmd"
	"staffing/internal/adapters/in/tabular"
	"staffing/internal/adapters/out/postgres"
	"staffing/internal/core/application/ingestion"
	"staffing/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// importFunc writes a batch of rows and returns how many jobs were written.
type importFunc func(ctx context.Context, rows []ingestion.RawRow) (int, error)

// store exposes the two ingestion modes backed by one database connection.
type store struct {
	create importFunc
	update importFunc
	close  func() error
}

type storeOpener func(envFile string) (store, error)

func newRootCommand(open storeOpener) *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "jobimport",
		Short:         "Bulk create or update jobs from a CSV or XLSX file",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file with database settings")

	root.AddCommand(
		newImportCommand("create", "Insert every row as a new job", open, &envFile,
			func(s store) importFunc { return s.create }),
		newImportCommand("update", "Upsert every row by its id column", open, &envFile,
			func(s store) importFunc { return s.update }),
	)
	return root
}

func newImportCommand(
	use, short string,
	open storeOpener,
	envFile *string,
	pick func(store) importFunc,
) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			rows, err := readFile(file)
			if err != nil {
				return err
			}

			s, err := open(*envFile)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer func() { _ = s.close() }()

			count, err := pick(s)(c.Context(), rows)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.OutOrStdout(), "%d jobs written\n", count)
			return err
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Path to a .csv or .xlsx file (required)")
	_ = c.MarkFlagRequired("file")
	return c
}

func readFile(path string) ([]ingestion.RawRow, error) {
	format, err := tabular.FormatFromFilename(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return tabular.Read(f, format)
}

func openStore(envFile string) (store, error) {
	config, err := cmd.LoadConfig(envFile)
	if err != nil {
		return store{}, err
	}

	db, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return store{}, err
	}
	if err = postgres.Migrate(db); err != nil {
		return store{}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return store{}, err
	}

	app := cmd.NewCompositionRoot(config, db, nil, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	createHandler := app.CreateBulkCreateJobsCommandHandler()
	updateHandler := app.CreateBulkUpdateJobsCommandHandler()

	return store{
		create: func(ctx context.Context, rows []ingestion.RawRow) (int, error) {
			command, err := commands.NewBulkCreateJobsCommand(rows)
			if err != nil {
				return 0, err
			}
			return createHandler.Handle(ctx, command)
		},
		update: func(ctx context.Context, rows []ingestion.RawRow) (int, error) {
			command, err := commands.NewBulkUpdateJobsCommand(rows)
			if err != nil {
				return 0, err
			}
			return updateHandler.Handle(ctx, command)
		},
		close: sqlDB.Close,
	}, nil
}
