package grpc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osmosis-labs/swapquery/delivery/grpc"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		opts     []grpc.ClientOption
		wantErr  bool
	}{
		{
			name:     "valid endpoint",
			endpoint: "localhost:9090",
		},
		{
			name:     "custom message size",
			endpoint: "localhost:9090",
			opts:     []grpc.ClientOption{grpc.WithMaxCallRecvMsgSize(1024)},
		},
		{
			name:     "invalid message size",
			endpoint: "localhost:9090",
			opts:     []grpc.ClientOption{grpc.WithMaxCallRecvMsgSize(0)},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := grpc.NewClient(tt.endpoint, tt.opts...)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, client)
			assert.NotNil(t, client.ClientConn)
			assert.NoError(t, client.Close())
		})
	}
}
