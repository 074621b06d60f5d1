package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/logger"
)

type fakeRollbacker struct{ err error }

func (f fakeRollbacker) Rollback(context.Context) error { return f.err }

func TestSafeRollback(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		name   string
		err    error
		logged bool
	}{
		{"rolled back", nil, false},
		{"already committed", domain.ErrTxClosed, false},
		{"wrapped closed", fmt.Errorf("pg: %w", domain.ErrTxClosed), false},
		{"connection lost", errors.New("conn closed"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitLoggerWithWriter(logger.Config{Level: "debug", Format: "text"}, &buf)

			SafeRollback(context.Background(), fakeRollbacker{err: tt.err})

			if tt.logged {
				assert.Contains(t, buf.String(), LogMsgRollbackFailed)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
