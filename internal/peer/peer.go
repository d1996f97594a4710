// Package peer implements the bootstrap peer-session collaborators over gRPC.
// Block and peer-list payloads travel as raw btcd-wire frames; readiness uses
// the standard gRPC health protocol.
package peer

import (
	"context"
	"fmt"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/blocksync7000-node/internal/bootstrap"
	"github.com/goodnatureofminers/blocksync7000-node/internal/chain"
)

const (
	peersMethod      = "/blocksync.v1.NodeService/Peers"
	pullBlocksMethod = "/blocksync.v1.NodeService/PullBlocksToTip"
)

var pullBlocksStreamDesc = &grpc.StreamDesc{
	StreamName:    "PullBlocksToTip",
	ServerStreams: true,
}

// Dialer opens gRPC sessions to remote peers.
type Dialer struct {
	logger *zap.Logger
	opts   []grpc.DialOption
}

// NewDialer builds a Dialer with the standard client interceptor chain.
func NewDialer(logger *zap.Logger) *Dialer {
	logger = logger.Named("peer")
	return &Dialer{
		logger: logger,
		opts: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithUnaryInterceptor(grpcMiddleware.ChainUnaryClient(
				grpcPrometheus.UnaryClientInterceptor,
				grpcZap.UnaryClientInterceptor(logger),
			)),
			grpc.WithStreamInterceptor(grpcMiddleware.ChainStreamClient(
				grpcPrometheus.StreamClientInterceptor,
				grpcZap.StreamClientInterceptor(logger),
			)),
		},
	}
}

// Connect opens a session to the given address. The connection is established
// lazily; Ready reports whether the peer actually serves.
func (d *Dialer) Connect(_ context.Context, addr string) (bootstrap.Session, error) {
	conn, err := grpc.NewClient(addr, d.opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	conn.Connect()
	return &session{
		conn:   conn,
		logger: d.logger.With(zap.String("peer", addr)),
	}, nil
}

type session struct {
	conn   *grpc.ClientConn
	logger *zap.Logger
}

// Ready blocks until the peer answers a health check as serving.
func (s *session) Ready(ctx context.Context) error {
	resp, err := grpc_health_v1.NewHealthClient(s.conn).Check(
		ctx,
		&grpc_health_v1.HealthCheckRequest{},
		grpc.WaitForReady(true),
	)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("peer health is %s", resp.GetStatus())
	}
	return nil
}

// Peers fetches the addresses the remote peer knows about.
func (s *session) Peers(ctx context.Context) ([]string, error) {
	var resp rawFrame
	if err := s.conn.Invoke(ctx, peersMethod, &rawFrame{}, &resp, grpc.ForceCodec(rawCodec{})); err != nil {
		return nil, err
	}
	return decodePeerList(resp.data)
}

// PullBlocksToTip opens the server-streaming pull and sends the checkpoint
// set as the single request frame.
func (s *session) PullBlocksToTip(ctx context.Context, checkpoints []chain.Checkpoint) (bootstrap.BlockStream, error) {
	req, err := encodeCheckpoints(checkpoints)
	if err != nil {
		return nil, err
	}

	cs, err := s.conn.NewStream(ctx, pullBlocksStreamDesc, pullBlocksMethod, grpc.ForceCodec(rawCodec{}))
	if err != nil {
		return nil, err
	}
	if err := cs.SendMsg(&rawFrame{data: req}); err != nil {
		return nil, err
	}
	if err := cs.CloseSend(); err != nil {
		return nil, err
	}

	s.logger.Debug("pull stream opened", zap.Int("checkpoints", len(checkpoints)))
	return &blockStream{cs: cs}, nil
}

func (s *session) Close() error {
	return s.conn.Close()
}

type blockStream struct {
	cs grpc.ClientStream
}

// Next receives one block frame. io.EOF marks a cleanly finished stream; the
// stream context was bound when the pull was opened.
func (b *blockStream) Next(_ context.Context) (*chain.Block, error) {
	var frame rawFrame
	if err := b.cs.RecvMsg(&frame); err != nil {
		return nil, err
	}
	return decodeBlock(frame.data)
}
