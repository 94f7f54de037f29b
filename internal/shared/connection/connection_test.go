package connection

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestConnectRedisWithRetry_GivesUp(t *testing.T) {
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = 5 * time.Second })

	_, err := ConnectRedisWithRetry(closedAddr(t), 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 retries")
}

func TestConnectKafkaWithRetry_GivesUp(t *testing.T) {
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = 5 * time.Second })

	_, err := ConnectKafkaWithRetry(closedAddr(t), 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 retries")
}

func TestNewDynamoDBClient_LocalEndpoint(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")

	client, err := NewDynamoDBClient(context.Background(), "ap-northeast-1", "http://localhost:8000")

	require.NoError(t, err)
	opts := client.Options()
	assert.Equal(t, "ap-northeast-1", opts.Region)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://localhost:8000", *opts.BaseEndpoint)
}
