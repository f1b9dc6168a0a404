package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/movie-scout/internal/server"
)

var (
	servePort        int
	serveRegion      string
	serveNoStreaming bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the recommendation pipeline as a REST endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveRegion, "region", "", "Watch-provider region code (default US)")
	serveCmd.Flags().BoolVar(&serveNoStreaming, "no-streaming", false, "Skip streaming availability lookups")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	runner, closeRunner, err := buildRunner(context.Background(), "", "", serveRegion, !serveNoStreaming)
	if err != nil {
		return err
	}
	defer closeRunner()

	srv, err := server.New(server.Config{
		Port:   servePort,
		Runner: runner,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
