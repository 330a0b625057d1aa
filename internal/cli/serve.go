package cli

import (
	"github.com/spf13/cobra"

	"github.com/gridshell/envelope/internal/server"
)

// defaultAddr is the default listen address for the HTTP API.
const defaultAddr = ":8080"

// newServeCmd creates the serve command for running the derivation API.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve envelope derivation over HTTP",
		Long:  `Serve starts an HTTP API that accepts block definitions (POST /v1/envelope) and responds with the derived zone geometry as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			return server.New(logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}
