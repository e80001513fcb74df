package cmd

import (
	internal "github.com/dirforge/dirindex/dirindex"
	"github.com/dirforge/dirindex/dirindex/config"
	"github.com/dirforge/dirindex/dirindex/fswalk"
	"github.com/dirforge/dirindex/dirindex/indexer"
	"github.com/dirforge/dirindex/dirindex/server"

	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP front-end",
	Long: `Serve exposes the indexer over HTTP: POST /index runs a full index of
a server-local directory, GET /runs/{id}/directory_index.{json,xml,txt}
downloads the artifacts. Runs are kept in memory only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.DirIndex.Server.Addr
		}

		svc := indexer.New(
			indexer.WithFormats(cfg.DirIndex.Formats...),
			indexer.WithBatchSizes(cfg.DirIndex.BuilderBatchSize, cfg.DirIndex.SerializerBatchSize),
		)

		srv := server.New(svc, fswalk.NewWalker(), internal.GetLogger())
		return srv.ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}
