package service_test

import (
	"context"
	"errors"
	"testing"

	"kwanzabet/models"
	"kwanzabet/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, service.TransferService) {
		f := newFixture()
		_, err := f.accounts.Create(ctx, "sender", 5000)
		require.NoError(t, err)
		_, err = f.accounts.Create(ctx, "recipient", 1000)
		require.NoError(t, err)
		return f, service.NewTransferService(f.accounts, f.transactions, f.publisher)
	}

	t.Run("moves the amount and logs both sides", func(t *testing.T) {
		f, svc := setup(t)

		result, err := svc.Transfer(ctx, "sender", "recipient", 2000)
		require.NoError(t, err)
		assert.Equal(t, int64(2000), result.Amount)
		assert.Equal(t, "recipient", result.ToAccount)
		assert.Equal(t, int64(3000), result.NewBalance)

		recipient, err := f.accounts.Get(ctx, "recipient")
		require.NoError(t, err)
		assert.Equal(t, int64(3000), recipient.Balance)

		outRecords, err := f.transactions.HistoryFor(ctx, "sender")
		require.NoError(t, err)
		require.Len(t, outRecords, 1)
		assert.Equal(t, models.TransactionTransferOut, outRecords[0].Kind)

		inRecords, err := f.transactions.HistoryFor(ctx, "recipient")
		require.NoError(t, err)
		require.Len(t, inRecords, 1)
		assert.Equal(t, models.TransactionTransferIn, inRecords[0].Kind)
	})

	t.Run("insufficient balance rejected", func(t *testing.T) {
		f, svc := setup(t)

		_, err := svc.Transfer(ctx, "sender", "recipient", 5001)
		assert.True(t, errors.Is(err, models.ErrInsufficientBalance))

		sender, err := f.accounts.Get(ctx, "sender")
		require.NoError(t, err)
		assert.Equal(t, int64(5000), sender.Balance)
	})

	t.Run("self transfer rejected", func(t *testing.T) {
		_, svc := setup(t)
		_, err := svc.Transfer(ctx, "sender", "sender", 100)
		assert.Error(t, err)
	})

	t.Run("non positive amount rejected", func(t *testing.T) {
		_, svc := setup(t)
		_, err := svc.Transfer(ctx, "sender", "recipient", 0)
		assert.Error(t, err)
		_, err = svc.Transfer(ctx, "sender", "recipient", -100)
		assert.Error(t, err)
	})

	t.Run("unknown recipient rejected before debit", func(t *testing.T) {
		f, svc := setup(t)

		_, err := svc.Transfer(ctx, "sender", "missing", 100)
		assert.True(t, errors.Is(err, models.ErrAccountNotFound))

		sender, err := f.accounts.Get(ctx, "sender")
		require.NoError(t, err)
		assert.Equal(t, int64(5000), sender.Balance)
	})

	t.Run("inactive recipient rejected", func(t *testing.T) {
		f, svc := setup(t)
		require.NoError(t, f.accounts.Deactivate(ctx, "recipient"))

		_, err := svc.Transfer(ctx, "sender", "recipient", 100)
		assert.True(t, errors.Is(err, models.ErrAccountInactive))
	})

	t.Run("transfers conserve total balance", func(t *testing.T) {
		f, svc := setup(t)

		for i := 0; i < 5; i++ {
			_, err := svc.Transfer(ctx, "sender", "recipient", 500)
			require.NoError(t, err)
		}

		sender, err := f.accounts.Get(ctx, "sender")
		require.NoError(t, err)
		recipient, err := f.accounts.Get(ctx, "recipient")
		require.NoError(t, err)
		assert.Equal(t, int64(6000), sender.Balance+recipient.Balance)
		assert.Equal(t, int64(2500), sender.Balance)
	})
}
