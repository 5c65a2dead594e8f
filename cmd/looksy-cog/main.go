package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	pb "github.com/stackmoxie/looksy-cog/api/cogpb"
	adaptgrpc "github.com/stackmoxie/looksy-cog/internal/adapters/grpc"
	"github.com/stackmoxie/looksy-cog/internal/auth"
	"github.com/stackmoxie/looksy-cog/internal/client"
	"github.com/stackmoxie/looksy-cog/internal/cog"
	"github.com/stackmoxie/looksy-cog/internal/config"
	"github.com/stackmoxie/looksy-cog/internal/log"
	"github.com/stackmoxie/looksy-cog/internal/manifest"
	"github.com/stackmoxie/looksy-cog/internal/registry"
	"github.com/stackmoxie/looksy-cog/internal/steps"
	"google.golang.org/grpc"
)

func main() {
	configDir := os.Getenv("COG_CONFIG_DIR")
	if configDir == "" {
		configDir = "."
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	lvl, _ := log.ParseLevel(cfg.Log.Level)
	logger := log.New(os.Stdout, cfg.Cog.Name, cfg.Cog.Version, lvl)
	slog.SetDefault(logger)

	reg, err := registry.New(steps.All()...)
	if err != nil {
		logger.Error("Failed to build step registry", log.Error(err))
		os.Exit(1)
	}

	authn := auth.NewAuthenticator(client.AuthFields, client.NewFactory(cfg.LooksyTimeout()))
	c := cog.New(manifest.Identity{
		Name:     cfg.Cog.Name,
		Label:    cfg.Cog.Label,
		Version:  cfg.Cog.Version,
		Homepage: cfg.Cog.Homepage,
		AuthHelp: cfg.Cog.AuthHelp,
	}, reg, authn, logger)

	grpcServer := grpc.NewServer()
	pb.RegisterCogServiceServer(grpcServer, adaptgrpc.NewCogServer(c))

	lis, err := listen(cfg.Server.Listen)
	if err != nil {
		logger.Error("Failed to listen",
			slog.String("addr", cfg.Server.Listen), log.Error(err))
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigCh
		logger.Info("Shutting down")
		grpcServer.GracefulStop()
	}()

	logger.Info("Cog listening",
		slog.String("addr", cfg.Server.Listen), slog.Int("steps", reg.Len()))
	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("Server error", log.Error(err))
		os.Exit(1)
	}
}

func listen(addr string) (net.Listener, error) {
	if sockPath, ok := strings.CutPrefix(addr, "unix://"); ok {
		os.Remove(sockPath)
		return net.Listen("unix", sockPath)
	}
	return net.Listen("tcp", addr)
}
