package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pong SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant picker menu; both
paddles are played at that one terminal. Match history is kept in memory
and shared by all sessions until the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pong/host_key

Examples:
  pong serve                           # Listen on :23234 with auto-generated key
  pong serve --ssh :2222               # Listen on port 2222
  pong serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	rate, err := tickRate(cmd, pong.IDModern)
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.ConfigPath = flagConfig
	cfg.TickRate = rate

	if flagLogFile != "" {
		logger, closeLog, logErr := openLogger("pong-ssh")
		if logErr != nil {
			return logErr
		}
		defer closeLog()
		cfg.Logger = logger
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Pong SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: %s\n", connectCommand(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// connectCommand returns the ssh invocation for a listen address.
// Wildcard hosts are reached through localhost.
func connectCommand(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh " + addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	if port == "22" {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}
