package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	pb "github.com/stackmoxie/looksy-cog/api/cogpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	addr := os.Getenv("COG_ADDR")
	if addr == "" {
		addr = "localhost:28866"
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	client := pb.NewCogServiceClient(conn)
	ctx := withCredentials(context.Background(), os.Getenv("COG_ENDPOINT"))

	switch os.Args[1] {
	case "manifest":
		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		cmdManifest(ctx, client)
	case "run":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		defer cancel()
		cmdRun(ctx, client, os.Args[2:])
	case "stream":
		ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
		defer cancel()
		cmdStream(ctx, client, os.Stdin)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: cogctl <command> [args]\n\nCommands:\n  manifest                    Show the cog manifest\n  run <step-id> [key=value]   Run a single step\n  stream                      Run one step per stdin line over a single stream\n\nEnvironment:\n  COG_ADDR      cog address (default localhost:28866)\n  COG_ENDPOINT  endpoint credential sent with run and stream\n")
}

func withCredentials(ctx context.Context, endpoint string) context.Context {
	if endpoint == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "endpoint", endpoint)
}

func cmdManifest(ctx context.Context, client pb.CogServiceClient) {
	m, err := client.GetManifest(ctx, &pb.ManifestRequest{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Name:    %s\n", m.Name)
	fmt.Printf("Label:   %s\n", m.Label)
	fmt.Printf("Version: %s\n", m.Version)
	fmt.Println("Auth fields:")
	for _, f := range m.AuthFields {
		fmt.Printf("  %-12s %-8s %s\n", f.Key, f.Type, f.Optionality)
	}
	fmt.Println("Steps:")
	for _, s := range m.StepDefinitions {
		fmt.Printf("  %-28s %-10s %s\n", s.StepId, s.Type, s.Expression)
	}
}

func cmdRun(ctx context.Context, client pb.CogServiceClient, args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: cogctl run <step-id> [key=value...]\n")
		os.Exit(1)
	}

	step, err := parseStep(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	resp, err := client.RunStep(ctx, &pb.RunStepRequest{Step: step})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(formatResponse(resp))
}

func cmdStream(ctx context.Context, client pb.CogServiceClient, in io.Reader) {
	stream, err := client.RunSteps(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	done := make(chan error, 1)
	go func() {
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				done <- nil
				return
			}
			if err != nil {
				done <- err
				return
			}
			fmt.Println(formatResponse(resp))
		}
	}()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		step, err := parseStep(strings.Fields(line))
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", line, err)
			continue
		}
		if err := stream.Send(&pb.RunStepRequest{Step: step}); err != nil {
			break
		}
	}
	_ = stream.CloseSend()

	if err := <-done; err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
