// dbtool manages the careersite database: schema sync, demo data, and
// stored secrets.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"careersite-engine/internal/config"
	"careersite-engine/internal/schema"
	"careersite-engine/internal/store"
)

type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Sync     SyncCmd     `cmd:"" help:"Create all tables, indexes, and RLS."`
	Seed     SeedCmd     `cmd:"" help:"Insert demo data (skips if present)."`
	Reset    ResetCmd    `cmd:"" help:"Drop and recreate the whole schema."`
	Reseed   ReseedCmd   `cmd:"" help:"Clear all data and seed again."`
	Generate GenerateCmd `cmd:"" help:"Print the full DDL without touching the database."`
	Status   StatusCmd   `cmd:"" help:"Report table existence and schema version."`
	Secrets  SecretsCmd  `cmd:"" help:"Manage secrets in the OS keyring."`
}

// runContext is passed to every command's Run.
type runContext struct {
	Log zerolog.Logger
}

// withDB opens the pool, takes the tool lock for mutating commands, and
// runs fn. The flock stops two dbtool invocations from racing DDL against
// the same database from one machine.
func withDB(rc *runContext, lock bool, fn func(ctx context.Context, db *store.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if lock {
		fl := flock.New(filepath.Join(os.TempDir(), "careersite-dbtool.lock"))
		locked, err := fl.TryLock()
		if err != nil {
			return fmt.Errorf("acquire tool lock: %w", err)
		}
		if !locked {
			return errors.New("another dbtool run is in progress")
		}
		defer func() { _ = fl.Unlock() }()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := store.Open(ctx, cfg.DatabaseURL, rc.Log)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, db)
}

type SyncCmd struct{}

func (c *SyncCmd) Run(rc *runContext) error {
	return withDB(rc, true, func(ctx context.Context, db *store.DB) error {
		m := schema.NewMigrator(schema.RunnerFor(db), rc.Log)
		if err := m.Sync(ctx); err != nil {
			return err
		}
		return m.Record(ctx, schema.RegistryVersion)
	})
}

type SeedCmd struct{}

func (c *SeedCmd) Run(rc *runContext) error {
	return withDB(rc, true, func(ctx context.Context, db *store.DB) error {
		return schema.NewSeeder(db, rc.Log).SeedDemoData(ctx)
	})
}

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(rc *runContext) error {
	if !c.Yes {
		fmt.Print("This drops every table and all data. Type 'reset' to continue: ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "reset" {
			return errors.New("aborted")
		}
	}
	return withDB(rc, true, func(ctx context.Context, db *store.DB) error {
		m := schema.NewMigrator(schema.RunnerFor(db), rc.Log)
		if err := m.Reset(ctx); err != nil {
			return err
		}
		return m.Record(ctx, schema.RegistryVersion)
	})
}

type ReseedCmd struct{}

func (c *ReseedCmd) Run(rc *runContext) error {
	return withDB(rc, true, func(ctx context.Context, db *store.DB) error {
		return schema.NewSeeder(db, rc.Log).Reseed(ctx)
	})
}

type GenerateCmd struct {
	Out string `help:"Write the DDL to a file instead of stdout." type:"path"`
}

func (c *GenerateCmd) Run(rc *runContext) error {
	ddl := schema.GenerateAll(schema.AllTables)
	if c.Out == "" {
		fmt.Print(ddl)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(ddl), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}
	rc.Log.Info().Str("path", c.Out).Msg("DDL written")
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(rc *runContext) error {
	return withDB(rc, false, func(ctx context.Context, db *store.DB) error {
		m := schema.NewMigrator(schema.RunnerFor(db), rc.Log)

		version, err := m.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("schema version: %d\n", version)

		for _, t := range schema.AllTables {
			exists, err := m.TableExists(ctx, t.Name)
			if err != nil {
				return err
			}
			state := "missing"
			if exists {
				state = "ok"
			}
			fmt.Printf("  %-16s %s\n", t.Name, state)
		}
		return nil
	})
}

type SecretsCmd struct {
	SetDSN SetDSNCmd       `cmd:"" name:"set-dsn" help:"Store the database URL in the OS keyring."`
	Clear  ClearSecretsCmd `cmd:"" help:"Remove the stored database URL."`
}

type SetDSNCmd struct {
	DSN string `arg:"" help:"Postgres connection string."`
}

func (c *SetDSNCmd) Run(rc *runContext) error {
	if err := config.StoreDSN(c.DSN); err != nil {
		return err
	}
	rc.Log.Info().Msg("database URL stored in keyring")
	return nil
}

type ClearSecretsCmd struct{}

func (c *ClearSecretsCmd) Run(rc *runContext) error {
	if err := config.ClearDSN(); err != nil {
		return err
	}
	rc.Log.Info().Msg("database URL removed from keyring")
	return nil
}

func main() {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("dbtool"),
		kong.Description("Careersite database management."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log := zerolog.New(os.Stderr).With().Timestamp().Str("tool", "dbtool").Logger()

	if err := kctx.Run(&runContext{Log: log}); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
