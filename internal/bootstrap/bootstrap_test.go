package bootstrap_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-talent/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAuditLogger struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAuditLogger) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestServe_ShutsDownOnContextCancel(t *testing.T) {
	audit := &recordingAuditLogger{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- bootstrap.Serve(ctx, http.NotFoundHandler(), bootstrap.ServerConfig{Port: "0"}, audit)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	if assert.Len(t, audit.entries, 1) {
		assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
	}
}

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := bootstrap.NewStdoutAuditLogger(zap.New(core))

	l.Log(context.Background(), bootstrap.AuditLog{Action: "SEED", Message: "seeded", Meta: map[string]any{"count": 3}})

	entries := logs.FilterMessage("audit event").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "audit", entries[0].LoggerName)
		assert.Equal(t, "SEED", entries[0].ContextMap()["action"])
	}
}
