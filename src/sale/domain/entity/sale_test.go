package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildItem(t *testing.T, name string, quantity int, unitPrice string) SaleItem {
	t.Helper()
	serviceID := uuid.New()
	item, err := NewSaleItem(uuid.Nil, &serviceID, nil, nil, name, quantity, dec(unitPrice))
	require.NoError(t, err)
	return *item
}

func buildPayment(t *testing.T, method PaymentMethod, amount string) Payment {
	t.Helper()
	payment, err := NewPayment(uuid.Nil, method, dec(amount), time.Now())
	require.NoError(t, err)
	return *payment
}

func TestNewSale(t *testing.T) {
	tenantID := uuid.New()

	t.Run("venda conciliada", func(t *testing.T) {
		items := []SaleItem{
			buildItem(t, "Corte Masculino", 1, "45.00"),
			buildItem(t, "Pomada Modeladora", 2, "38.00"),
		}
		payments := []Payment{
			buildPayment(t, PaymentMethodCash, "50.00"),
			buildPayment(t, PaymentMethodPix, "61.00"),
		}

		sale, err := NewSale(tenantID, nil, items, payments, dec("10.00"), nil, "")
		require.NoError(t, err)

		assert.True(t, sale.Subtotal.Equal(dec("121.00")))
		assert.True(t, sale.Total.Equal(dec("111.00")))
		assert.True(t, sale.TotalPaid().Equal(dec("111.00")))
		assert.Equal(t, 2, sale.TotalItems())

		// sale_id propagado para o aggregate inteiro
		for _, item := range sale.Items {
			assert.Equal(t, sale.ID, item.SaleID)
		}
		for _, payment := range sale.Payments {
			assert.Equal(t, sale.ID, payment.SaleID)
		}
	})

	t.Run("pagamento divergente rejeitado", func(t *testing.T) {
		items := []SaleItem{buildItem(t, "Corte", 1, "45.00")}
		payments := []Payment{buildPayment(t, PaymentMethodCash, "40.00")}

		_, err := NewSale(tenantID, nil, items, payments, decimal.Zero, nil, "")
		assert.ErrorIs(t, err, ErrPaymentMismatch)
	})

	t.Run("pagamento a maior rejeitado", func(t *testing.T) {
		items := []SaleItem{buildItem(t, "Corte", 1, "45.00")}
		payments := []Payment{buildPayment(t, PaymentMethodCash, "46.00")}

		_, err := NewSale(tenantID, nil, items, payments, decimal.Zero, nil, "")
		assert.ErrorIs(t, err, ErrPaymentMismatch)
	})

	t.Run("sem itens rejeitado", func(t *testing.T) {
		_, err := NewSale(tenantID, nil, nil, nil, decimal.Zero, nil, "")
		assert.ErrorIs(t, err, ErrSaleMustHaveItems)
	})

	t.Run("desconto negativo rejeitado", func(t *testing.T) {
		items := []SaleItem{buildItem(t, "Corte", 1, "45.00")}
		payments := []Payment{buildPayment(t, PaymentMethodCash, "45.00")}

		_, err := NewSale(tenantID, nil, items, payments, dec("-1"), nil, "")
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})

	t.Run("tenant obrigatório", func(t *testing.T) {
		items := []SaleItem{buildItem(t, "Corte", 1, "45.00")}
		payments := []Payment{buildPayment(t, PaymentMethodCash, "45.00")}

		_, err := NewSale(uuid.Nil, nil, items, payments, decimal.Zero, nil, "")
		assert.ErrorIs(t, err, ErrTenantIDRequired)
	})
}

func TestNewSaleItem(t *testing.T) {
	serviceID := uuid.New()
	productID := uuid.New()

	t.Run("subtotal calculado", func(t *testing.T) {
		item, err := NewSaleItem(uuid.New(), nil, &productID, nil, "Pomada", 3, dec("38.00"))
		require.NoError(t, err)
		assert.True(t, item.TotalPrice.Equal(dec("114.00")))
		assert.Equal(t, ItemKindProduct, item.Kind())
	})

	t.Run("validações", func(t *testing.T) {
		_, err := NewSaleItem(uuid.New(), &serviceID, nil, nil, "", 1, dec("10"))
		assert.ErrorIs(t, err, ErrItemNameRequired)

		_, err = NewSaleItem(uuid.New(), &serviceID, nil, nil, "Corte", 0, dec("10"))
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = NewSaleItem(uuid.New(), &serviceID, nil, nil, "Corte", 1, dec("-10"))
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = NewSaleItem(uuid.New(), nil, nil, nil, "Corte", 1, dec("10"))
		assert.ErrorIs(t, err, ErrItemReferenceRequired)

		_, err = NewSaleItem(uuid.New(), &serviceID, &productID, nil, "Corte", 1, dec("10"))
		assert.ErrorIs(t, err, ErrItemReferenceConflict)
	})
}

func TestNewPayment(t *testing.T) {
	t.Run("pagamento válido", func(t *testing.T) {
		payment, err := NewPayment(uuid.New(), PaymentMethodPix, dec("30.00"), time.Time{})
		require.NoError(t, err)
		assert.False(t, payment.PaymentDate.IsZero())
	})

	t.Run("validações", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), PaymentMethod("boleto"), dec("30.00"), time.Now())
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

		_, err = NewPayment(uuid.New(), PaymentMethodCash, decimal.Zero, time.Now())
		assert.ErrorIs(t, err, ErrInvalidPaymentAmount)
	})
}

func TestPaymentMethod(t *testing.T) {
	valid := []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodPix,
		PaymentMethodOther,
	}
	for _, m := range valid {
		assert.True(t, m.IsValid(), "method %s", m)
	}
	assert.False(t, PaymentMethod("cheque").IsValid())

	assert.Equal(t, "Dinheiro", PaymentMethodCash.Label())
	assert.Equal(t, "Cartão Crédito", PaymentMethodCreditCard.Label())
	assert.Equal(t, "Cartão Débito", PaymentMethodDebitCard.Label())
	assert.Equal(t, "PIX", PaymentMethodPix.Label())
	assert.Equal(t, "Outro", PaymentMethodOther.Label())
}
