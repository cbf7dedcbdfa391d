// Command mcpmath runs the math tool server over streamable HTTP or
// stdio.
//
// Run with: go run ./cmd/mcpmath [-host 0.0.0.0] [-port 5000] [-transport http|stdio]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jonwraymond/mcpmath/mathtool"
	"github.com/jonwraymond/mcpmath/registry"
)

const (
	serverName    = "mcpmath"
	serverVersion = "1.0.0"
)

func main() {
	host := flag.String("host", "0.0.0.0", "host to bind the HTTP server to")
	port := flag.Int("port", 5000, "port to run the HTTP server on")
	transport := flag.String("transport", "http", "transport to serve (http or stdio)")
	flag.Parse()

	if err := run(*host, *port, *transport); err != nil {
		log.Fatal("server error", "err", err)
	}
}

func run(host string, port int, transport string) error {
	reg := registry.New(registry.Config{
		ServerInfo: registry.ServerInfo{Name: serverName, Version: serverVersion},
	})
	if err := reg.RegisterCatalog(mathtool.Catalog()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := reg.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = reg.Stop()
	}()

	switch transport {
	case "stdio":
		log.Info("serving on stdio", "server", serverName, "tools", reg.Stats().Tools)
		return registry.ServeStdio(ctx, reg)
	case "http":
		return serveHTTP(ctx, reg, net.JoinHostPort(host, strconv.Itoa(port)))
	default:
		return fmt.Errorf("unknown transport %q (want http or stdio)", transport)
	}
}

func serveHTTP(ctx context.Context, reg *registry.Registry, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/mcp", registry.ServeHTTP(reg))
	mux.Handle("/sse", registry.ServeSSE(reg))
	mux.Handle("/health", registry.HealthHandler(reg))

	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving streamable HTTP", "server", serverName, "addr", addr, "tools", reg.Stats().Tools)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
