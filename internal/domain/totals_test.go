package domain_test

import (
	"testing"
	"time"

	"github.com/farm-management-api/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestSaleTotalAmount(t *testing.T) {
	sale := &domain.Sale{Quantity: 10, UnitPrice: 25}
	require.EqualValues(t, 250, sale.TotalAmount())
}

func TestPurchaseTotalCost(t *testing.T) {
	purchase := &domain.Purchase{Quantity: 4, UnitPrice: 100}
	require.EqualValues(t, 400, purchase.TotalCost())
}

func TestHarvestTotalValue(t *testing.T) {
	harvest := &domain.Harvest{Volume: 1000, PricePerKg: 12}
	require.EqualValues(t, 12000, harvest.TotalValue())
}

func TestWorkCost(t *testing.T) {
	t.Run("without technique", func(t *testing.T) {
		work := &domain.Work{Duration: 8}
		require.EqualValues(t, 0, work.Cost())
	})

	t.Run("with technique", func(t *testing.T) {
		work := &domain.Work{
			Duration:  3,
			Technique: &domain.Technique{UsageCost: 50},
		}
		require.EqualValues(t, 150, work.Cost())
	})
}

func TestIsContract(t *testing.T) {
	contractDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	deliveryDate := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("sale with contract date", func(t *testing.T) {
		sale := &domain.Sale{ContractDate: &contractDate}
		require.True(t, sale.IsContract())
	})

	t.Run("sale with only delivery date is not a contract", func(t *testing.T) {
		sale := &domain.Sale{DeliveryDate: &deliveryDate}
		require.False(t, sale.IsContract())
	})

	t.Run("purchase with contract date", func(t *testing.T) {
		purchase := &domain.Purchase{ContractDate: &contractDate}
		require.True(t, purchase.IsContract())
	})

	t.Run("purchase without dates", func(t *testing.T) {
		purchase := &domain.Purchase{}
		require.False(t, purchase.IsContract())
	})
}
