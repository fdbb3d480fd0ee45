package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dangerclosesec/crmaster/internal/config"
	"github.com/dangerclosesec/crmaster/internal/migrate"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var (
	dbConnString string
	verbose      bool

	activityOrg   string
	activityLimit int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to DB_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	activityCmd.Flags().StringVar(&activityOrg, "org", "", "Organisation ID")
	activityCmd.Flags().IntVarP(&activityLimit, "limit", "n", 20, "Number of entries to show")
	activityCmd.MarkFlagRequired("org")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(activityCmd)
}

var rootCmd = &cobra.Command{
	Use:   "crmctl",
	Short: "crmctl manages a CRMaster database",
	Long:  `crmctl applies the CRMaster schema and inspects organisation activity.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		applied, err := migrate.NewMigrator(db).Up(ctx)
		if err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		if len(applied) == 0 {
			fmt.Println("No pending migrations")
			return
		}
		fmt.Printf("Applied %d migration(s): %v\n", len(applied), applied)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current schema version",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()

		m := migrate.NewMigrator(db)
		ctx := context.Background()
		if err := m.InitializeSchema(ctx); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		version, err := m.CurrentVersion(ctx)
		if err != nil {
			log.Fatalf("Failed to get current version: %v", err)
		}

		latest := migrate.Migrations[len(migrate.Migrations)-1].Version
		fmt.Printf("Schema version: %d (latest %d)\n", version, latest)
	},
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Print the most recent activity of an organisation",
	Run: func(cmd *cobra.Command, args []string) {
		orgID, err := uuid.Parse(activityOrg)
		if err != nil {
			log.Fatalf("Invalid organisation ID: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, connString(true))
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		rows, err := pool.Query(ctx, `
			SELECT created_at, action, entity_type, entity_id, COALESCE(request_id, '')
			FROM activity_logs
			WHERE organisation_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		`, orgID, activityLimit)
		if err != nil {
			log.Fatalf("Failed to query activity: %v", err)
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				createdAt                               time.Time
				action, entityType, entityID, requestID string
			)
			if err := rows.Scan(&createdAt, &action, &entityType, &entityID, &requestID); err != nil {
				log.Fatalf("Failed to read activity: %v", err)
			}

			fmt.Printf("%s  %-20s %s/%s", createdAt.Format(time.RFC3339), action, entityType, entityID)
			if verbose && requestID != "" {
				fmt.Printf("  request=%s", requestID)
			}
			fmt.Println()
			count++
		}
		if err := rows.Err(); err != nil {
			log.Fatalf("Failed to read activity: %v", err)
		}

		if count == 0 {
			fmt.Println("No activity recorded")
		}
	},
}

// connString returns the --db flag or builds one from the environment.
// pgx wants the URL form.
func connString(asURL bool) string {
	if dbConnString != "" {
		return dbConnString
	}

	db, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if asURL {
		return db.URL()
	}
	return db.DSN()
}

func openDB() *sql.DB {
	db, err := sql.Open("postgres", connString(false))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
