// Command media-service is the process entry point: it loads configuration, bootstraps the relational/object-store/
// authorization/commerce collaborators, and serves the RPC surface until signalled to shut down. Everything in this
// file is explicitly out of scope for the rest of the module (process bootstrap, transport framing mechanics) per
// spec §1 — this is the one place it's wired together.
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/peoplesmarkets/media/auth"
	"github.com/peoplesmarkets/media/commerce"
	"github.com/peoplesmarkets/media/db"
	"github.com/peoplesmarkets/media/log"
	"github.com/peoplesmarkets/media/mediasvc"
	"github.com/peoplesmarkets/media/objstore/objcli"
	"github.com/peoplesmarkets/media/objstore/objcli/objaws"
	"github.com/peoplesmarkets/media/subscription"
	"github.com/peoplesmarkets/media/transport/grpcapi"
)

func main() {
	logger := log.NewWrappedLogger(log.StdoutLogger{})

	if err := run(logger); err != nil {
		logger.Errorf("media-service exiting: %v", err)
		os.Exit(1)
	}
}

func run(logger log.WrappedLogger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	objStore, err := newObjectStoreClient(cfg)
	if err != nil {
		return err
	}

	verifier := auth.NewVerifier(auth.Config{JWKSURL: cfg.JWKSURL, JWKSHost: cfg.JWKSHost})

	commerceClient := commerce.NewClient(commerce.Config{Address: cfg.CommerceServiceURL})
	defer commerceClient.Close()

	projector := subscription.NewProjector(pool)
	grant := auth.NewGrant(commerceClient, projector)

	svc := mediasvc.New(pool, objStore, grant, mediasvc.Config{
		Bucket:      cfg.BucketName,
		FileMaxSize: cfg.FileMaxSize,
	}, logger)

	server := grpcapi.NewServer(svc, projector, verifier, logger)
	grpcServer := server.NewGRPCServer()

	listener, err := net.Listen("tcp", cfg.Host)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)

	go func() {
		logger.Infof("listening on %s", cfg.Host)
		serveErr <- grpcServer.Serve(listener)
	}()

	return waitForShutdown(grpcServer, serveErr, logger)
}

func waitForShutdown(grpcServer *grpc.Server, serveErr <-chan error, logger log.WrappedLogger) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-sigCh:
		logger.Infof("received %s, shutting down gracefully", sig)
	}

	stopped := make(chan struct{})

	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(30 * time.Second):
		grpcServer.Stop()
	}

	return nil
}

func newObjectStoreClient(cfg config) (objcli.Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Endpoint:         aws.String(cfg.BucketEndpoint),
		Credentials:      credentials.NewStaticCredentials(cfg.BucketAccessKeyID, cfg.BucketSecretAccessKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	raw := objaws.NewClient(s3.New(sess))

	// 50 MiB/s sustained, bursting to 5 MiB, following the teacher's rate-limited wrapper for outbound
	// object-store transfer.
	limiter := rate.NewLimiter(rate.Limit(50<<20), 5<<20)

	return objcli.NewRateLimitedClient(raw, limiter), nil
}
