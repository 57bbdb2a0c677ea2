package grpc

import (
	"fmt"

	proto "github.com/cosmos/gogoproto/proto"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultMaxCallRecvMsgSize bounds the size of a query response.
// Contract simulations over long swap paths return large payloads.
const DefaultMaxCallRecvMsgSize = 16 * 1024 * 1024

// gogoCodec encodes messages with gogoproto so that cosmos-sdk and
// wasmd query types, which are not registered with the v2 API, can be sent.
type gogoCodec struct{}

func (gogoCodec) Marshal(v interface{}) ([]byte, error) {
	protoMsg, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("failed to assert proto.Message for (%T)", v)
	}
	return proto.Marshal(protoMsg)
}

func (gogoCodec) Unmarshal(data []byte, v interface{}) error {
	protoMsg, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("failed to assert proto.Message for (%T)", v)
	}
	return proto.Unmarshal(data, protoMsg)
}

func (gogoCodec) Name() string {
	return "gogoproto"
}

// Client is a traced gRPC connection to the chain node.
type Client struct {
	*grpc.ClientConn
}

// ClientOption configures NewClient.
type ClientOption func(*clientOptions)

type clientOptions struct {
	maxCallRecvMsgSize int
}

// WithMaxCallRecvMsgSize overrides DefaultMaxCallRecvMsgSize.
func WithMaxCallRecvMsgSize(size int) ClientOption {
	return func(o *clientOptions) {
		o.maxCallRecvMsgSize = size
	}
}

// NewClient creates the connection to grpcEndpoint. The connection is established lazily.
// See: https://github.com/cosmos/cosmos-sdk/issues/18430
func NewClient(grpcEndpoint string, opts ...ClientOption) (*Client, error) {
	options := clientOptions{maxCallRecvMsgSize: DefaultMaxCallRecvMsgSize}
	for _, opt := range opts {
		opt(&options)
	}

	if options.maxCallRecvMsgSize <= 0 {
		return nil, fmt.Errorf("max call recv msg size must be positive, got (%d)", options.maxCallRecvMsgSize)
	}

	grpcOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithDefaultCallOptions(
			grpc.ForceCodec(gogoCodec{}),
			grpc.MaxCallRecvMsgSize(options.maxCallRecvMsgSize),
		),
	}

	grpcConn, err := grpc.NewClient(
		grpcEndpoint,
		grpcOpts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial chain gRPC service (%s): %w", grpcEndpoint, err)
	}

	return &Client{
		ClientConn: grpcConn,
	}, nil
}
