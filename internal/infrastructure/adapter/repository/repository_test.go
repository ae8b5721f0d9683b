package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logifin/wallet-ledger/internal/domain/entity"
	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/database"
	"github.com/logifin/wallet-ledger/internal/infrastructure/adapter/repository"
)

func newRepos(t *testing.T) (*repository.WalletRepository, *repository.TransactionRepository) {
	t.Helper()
	db := database.NewTestDBManager(t)
	return repository.NewWalletRepository(db.Manager.DB(), db.Logger),
		repository.NewTransactionRepository(db.Manager.DB(), db.Logger)
}

func TestWalletRepository_CreateIfAbsent(t *testing.T) {
	wallets, _ := newRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	w, err := entity.NewWallet("user-1", entity.MustMoney("500000"), now)
	require.NoError(t, err)

	created, err := wallets.CreateIfAbsent(ctx, w)
	require.NoError(t, err)
	assert.True(t, created)

	// a second insert with other values changes nothing
	other, err := entity.NewWallet("user-1", entity.MustMoney("1"), now)
	require.NoError(t, err)
	created, err = wallets.CreateIfAbsent(ctx, other)
	require.NoError(t, err)
	assert.False(t, created)

	stored, err := wallets.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "500000.00", stored.Balance.String())
}

func TestWalletRepository_GetAndUpdate(t *testing.T) {
	wallets, _ := newRepos(t)
	ctx := context.Background()

	_, err := wallets.Get(ctx, "ghost")
	assert.ErrorIs(t, err, errs.ErrWalletNotFound)
	_, err = wallets.GetForUpdate(ctx, "ghost")
	assert.ErrorIs(t, err, errs.ErrWalletNotFound)

	w, err := entity.NewWallet("user-2", entity.MustMoney("500000"), time.Now().UTC())
	require.NoError(t, err)
	_, err = wallets.CreateIfAbsent(ctx, w)
	require.NoError(t, err)

	locked, err := wallets.GetForUpdate(ctx, "user-2")
	require.NoError(t, err)
	locked.Balance = entity.MustMoney("499000.25")
	locked.EscrowedAmount = entity.MustMoney("999.75")
	locked.LockedAmount = entity.MustMoney("10")
	require.NoError(t, wallets.UpdateBuckets(ctx, locked))

	stored, err := wallets.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "499000.25", stored.Balance.String())
	assert.Equal(t, "999.75", stored.EscrowedAmount.String())
	assert.Equal(t, "10.00", stored.LockedAmount.String())
	assert.True(t, stored.Holdings().Equal(entity.MustMoney("500000")))

	ghost, err := entity.NewWallet("ghost", entity.Zero, time.Now().UTC())
	require.NoError(t, err)
	assert.ErrorIs(t, wallets.UpdateBuckets(ctx, ghost), errs.ErrWalletNotFound)
}

func TestTransactionRepository_CreateAndQuery(t *testing.T) {
	_, txns := newRepos(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entry := func(id, user string, typ entity.TransactionType, cat entity.Category, offset time.Duration) *entity.Transaction {
		txn, err := entity.NewTransaction(id, user, entity.EntryDraft{
			Type:         typ,
			Category:     cat,
			Amount:       entity.MustMoney("100"),
			Description:  "test entry",
			BalanceAfter: entity.MustMoney("500100"),
		}, base.Add(offset))
		require.NoError(t, err)
		return txn
	}

	require.NoError(t, txns.Create(ctx, entry("txn-a", "user-1", entity.TypeCredit, entity.CategoryPayment, 0)))
	require.NoError(t, txns.Create(ctx, entry("txn-b", "user-1", entity.TypeDebit, entity.CategoryWithdrawal, time.Second)))
	require.NoError(t, txns.Create(ctx, entry("txn-c", "user-2", entity.TypeCredit, entity.CategoryRefund, 2*time.Second)))

	// ledger ids are unique
	assert.ErrorIs(t, txns.Create(ctx, entry("txn-a", "user-1", entity.TypeCredit, entity.CategoryPayment, 0)), errs.ErrStoreUnavailable)

	got, err := txns.GetByID(ctx, "txn-b")
	require.NoError(t, err)
	assert.Equal(t, entity.TypeDebit, got.Type)
	assert.Equal(t, "100.00", got.Amount.String())
	assert.Equal(t, "500100.00", got.BalanceAfter.String())
	assert.True(t, got.Timestamp.Equal(base.Add(time.Second)))

	_, err = txns.GetByID(ctx, "txn-z")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

	user1, err := txns.ListByUser(ctx, "user-1", entity.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, user1, 2)
	assert.Equal(t, "txn-b", user1[0].ID)
	assert.Equal(t, "txn-a", user1[1].ID)

	credits, err := txns.ListByUser(ctx, "user-1", entity.TransactionFilter{Type: entity.TypeCredit})
	require.NoError(t, err)
	require.Len(t, credits, 1)
	assert.Equal(t, "txn-a", credits[0].ID)

	all, err := txns.List(ctx, entity.TransactionFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "txn-c", all[0].ID)
	assert.Equal(t, "txn-b", all[1].ID)
}
