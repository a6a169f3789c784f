package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/francislhj094/pocket-worlds/config"
	"github.com/francislhj094/pocket-worlds/internal/app"
	"github.com/francislhj094/pocket-worlds/internal/db"
)

var rootCmd = &cobra.Command{
	Use:   "pocket-worlds",
	Short: "Backend for the Pocket Worlds game shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.StartApp()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the game server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.StartApp()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfigOrPanic()
		database, err := db.NewDB(cfg.DBConfig)
		if err != nil {
			return err
		}
		return database.Migrate(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
