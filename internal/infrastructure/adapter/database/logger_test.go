package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
	coremocks "github.com/logifin/wallet-ledger/mocks/port/core"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (r *recordingLogger) record(level, message string, fields map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, logEntry{level: level, message: message, fields: fields})
}

func (r *recordingLogger) SetLevel(coreport.LogLevel) {}
func (r *recordingLogger) GetLevel() coreport.LogLevel { return coreport.LogLevelDebug }
func (r *recordingLogger) With(map[string]any) coreport.Logger { return r }
func (r *recordingLogger) Debug(message string, fields map[string]any) { r.record("debug", message, fields) }
func (r *recordingLogger) Info(message string, fields map[string]any) { r.record("info", message, fields) }
func (r *recordingLogger) Warn(message string, fields map[string]any) { r.record("warn", message, fields) }
func (r *recordingLogger) Error(message string, fields map[string]any) { r.record("error", message, fields) }
func (r *recordingLogger) Flush() error { return nil }

func TestExtractQueryTypeAndTable(t *testing.T) {
	tests := []struct {
		sql       string
		queryType string
		table     string
	}{
		{`SELECT * FROM "wallets" WHERE user_id = $1 FOR UPDATE`, "SELECT", "wallets"},
		{`INSERT INTO "transactions" ("id","user_id") VALUES ($1,$2)`, "INSERT", "transactions"},
		{`UPDATE "wallets" SET "balance"=$1 WHERE user_id = $2`, "UPDATE", "wallets"},
		{`  delete from schema_migrations where version = 1`, "DELETE", "schema_migrations"},
		{`SET LOCAL lock_timeout = '2000ms'`, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.queryType, extractQueryType(tt.sql))
			assert.Equal(t, tt.table, extractTableName(tt.sql))
		})
	}
}

func TestDatabaseLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return `SELECT * FROM "wallets" WHERE user_id = 'u1'`, 1 }

	t.Run("fast query logs at debug with request id", func(t *testing.T) {
		rec := &recordingLogger{}
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(mock.Anything).Return(coreport.Duration(5 * time.Millisecond)).Once()

		l := NewDatabaseLogger(rec, tp, "info")
		l.Trace(coreport.WithRequestID(context.Background(), "req-1"), time.Now(), query, nil)

		require.Len(t, rec.entries, 1)
		entry := rec.entries[0]
		assert.Equal(t, "debug", entry.level)
		assert.Equal(t, "req-1", entry.fields["request_id"])
		assert.Equal(t, "wallets", entry.fields["table"])
		assert.Equal(t, "SELECT", entry.fields["type"])
	})

	t.Run("slow query logs at warn", func(t *testing.T) {
		rec := &recordingLogger{}
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(mock.Anything).Return(coreport.Duration(time.Second)).Once()

		NewDatabaseLogger(rec, tp, "warn").Trace(context.Background(), time.Now(), query, nil)

		require.Len(t, rec.entries, 1)
		assert.Equal(t, "warn", rec.entries[0].level)
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		rec := &recordingLogger{}
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(mock.Anything).Return(coreport.Duration(time.Millisecond)).Once()

		NewDatabaseLogger(rec, tp, "error").Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)

		assert.Empty(t, rec.entries)
	})

	t.Run("sql error logs at error", func(t *testing.T) {
		rec := &recordingLogger{}
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(mock.Anything).Return(coreport.Duration(time.Millisecond)).Once()

		NewDatabaseLogger(rec, tp, "error").Trace(context.Background(), time.Now(), query, errors.New("syntax error"))

		require.Len(t, rec.entries, 1)
		assert.Equal(t, "error", rec.entries[0].level)
		assert.Equal(t, "syntax error", rec.entries[0].fields["error"])
	})

	t.Run("silent skips everything", func(t *testing.T) {
		rec := &recordingLogger{}
		tp := coremocks.NewMockTimeProvider(t)

		NewDatabaseLogger(rec, tp, "silent").Trace(context.Background(), time.Now(), query, errors.New("boom"))

		assert.Empty(t, rec.entries)
	})
}
