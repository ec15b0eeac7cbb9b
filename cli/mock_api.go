package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpupo63/portfolio-sync/config"
	"github.com/rpupo63/portfolio-sync/mockapi"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMockAPICmd(opts *options) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "mock-api",
		Short: "Serve an in-memory portfolio API for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadMockServer(opts.env)
			if port != "" {
				cfg.Port = port
			}

			server, err := mockapi.NewServer(cfg, mockapi.NewStore())
			if err != nil {
				return err
			}

			errChannel := make(chan error, 2)
			go server.Start(errChannel)
			go listenToInterrupt(errChannel)

			fatalErr := <-errChannel
			log.Info().Msgf("Closing server: %v", fatalErr)

			server.ShutdownGracefully(30 * time.Second)
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
