package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
)

// PostgresSchemaManager adds the PostgreSQL-only parts of the schema:
// non-negative bucket constraints and the append-only guard on transactions
type PostgresSchemaManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPostgresSchemaManager creates a new PostgreSQL schema manager
func NewPostgresSchemaManager(db *gorm.DB, logger coreport.Logger) *PostgresSchemaManager {
	return &PostgresSchemaManager{
		db:     db,
		logger: logger,
	}
}

type schemaStatement struct {
	name string
	sql  string
}

var postgresStatements = []schemaStatement{
	{"wallets_balance_non_negative", `
		DO $$ BEGIN
			ALTER TABLE wallets ADD CONSTRAINT wallets_balance_non_negative CHECK (balance >= 0);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`},
	{"wallets_escrowed_non_negative", `
		DO $$ BEGIN
			ALTER TABLE wallets ADD CONSTRAINT wallets_escrowed_non_negative CHECK (escrowed_amount >= 0);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`},
	{"wallets_invested_non_negative", `
		DO $$ BEGIN
			ALTER TABLE wallets ADD CONSTRAINT wallets_invested_non_negative CHECK (total_invested >= 0);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`},
	{"transactions_amount_positive", `
		DO $$ BEGIN
			ALTER TABLE transactions ADD CONSTRAINT transactions_amount_positive CHECK (amount > 0);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`},
	{"idx_transactions_user_category", `
		CREATE INDEX IF NOT EXISTS idx_transactions_user_category
		ON transactions (user_id, category, timestamp DESC)`},
	{"transactions_append_only_fn", `
		CREATE OR REPLACE FUNCTION transactions_append_only() RETURNS trigger AS $$
		BEGIN
			RAISE EXCEPTION 'transactions are append-only';
		END;
		$$ LANGUAGE plpgsql`},
	{"transactions_append_only_trigger", `
		DO $$ BEGIN
			CREATE TRIGGER transactions_append_only
			BEFORE UPDATE OR DELETE ON transactions
			FOR EACH ROW EXECUTE FUNCTION transactions_append_only();
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`},
}

// Apply runs every statement; each is safe to repeat
func (m *PostgresSchemaManager) Apply(ctx context.Context) error {
	m.logger.Info("Applying PostgreSQL constraints", nil)

	for _, stmt := range postgresStatements {
		if err := m.db.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to apply schema statement", map[string]any{
				"statement": stmt.name,
				"error":     err.Error(),
			})
			return err
		}
	}
	return nil
}
