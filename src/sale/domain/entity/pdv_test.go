package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Cenário da tela de venda: Corte (45.00) + 2x Pomada (38.00), desconto 10.
func buildCartWithDiscount(t *testing.T) *PDV {
	t.Helper()
	pdv := NewPDV()

	_, err := pdv.AddItem(ItemKindService, "Corte Masculino", dec("45.00"), uuid.New())
	require.NoError(t, err)

	pomadaID, err := pdv.AddItem(ItemKindProduct, "Pomada Modeladora", dec("38.00"), uuid.New())
	require.NoError(t, err)
	require.NoError(t, pdv.SetQuantity(pomadaID, 2))

	require.NoError(t, pdv.SetDiscount("10"))
	return pdv
}

func TestPDVTotals(t *testing.T) {
	t.Run("carrinho com desconto", func(t *testing.T) {
		pdv := buildCartWithDiscount(t)

		totals := pdv.Totals()
		assert.True(t, totals.Subtotal.Equal(dec("121.00")), "subtotal: %s", totals.Subtotal)
		assert.True(t, totals.Discount.Equal(dec("10.00")), "discount: %s", totals.Discount)
		assert.True(t, totals.Total.Equal(dec("111.00")), "total: %s", totals.Total)
	})

	t.Run("carrinho vazio", func(t *testing.T) {
		pdv := NewPDV()
		totals := pdv.Totals()
		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.Total.IsZero())
		assert.True(t, totals.Remaining.IsZero())
	})

	t.Run("totais idempotentes", func(t *testing.T) {
		// Recalcular não pode acumular deriva de arredondamento
		pdv := buildCartWithDiscount(t)
		first := pdv.Totals()
		for i := 0; i < 100; i++ {
			again := pdv.Totals()
			assert.True(t, first.Total.Equal(again.Total))
			assert.True(t, first.Remaining.Equal(again.Remaining))
		}
	})

	t.Run("preco fracionado arredonda depois da soma", func(t *testing.T) {
		pdv := NewPDV()
		id, err := pdv.AddItem(ItemKindProduct, "Lâmina", dec("0.105"), uuid.New())
		require.NoError(t, err)
		require.NoError(t, pdv.SetQuantity(id, 3))

		// 0.105 * 3 = 0.315 → 0.32 (nunca 3 * 0.11 = 0.33)
		assert.True(t, pdv.Totals().Subtotal.Equal(dec("0.32")), "subtotal: %s", pdv.Totals().Subtotal)
	})
}

func TestPDVQuantity(t *testing.T) {
	pdv := NewPDV()
	id, err := pdv.AddItem(ItemKindService, "Barba", dec("30.00"), uuid.New())
	require.NoError(t, err)

	t.Run("quantidade menor que 1 é ignorada", func(t *testing.T) {
		require.NoError(t, pdv.SetQuantity(id, 0))
		assert.Equal(t, 1, pdv.Items()[0].Quantity)

		require.NoError(t, pdv.SetQuantity(id, -3))
		assert.Equal(t, 1, pdv.Items()[0].Quantity)
	})

	t.Run("quantidade válida substitui", func(t *testing.T) {
		require.NoError(t, pdv.SetQuantity(id, 5))
		assert.Equal(t, 5, pdv.Items()[0].Quantity)
	})

	t.Run("linha inexistente é no-op", func(t *testing.T) {
		require.NoError(t, pdv.SetQuantity(uuid.New(), 7))
		assert.Equal(t, 5, pdv.Items()[0].Quantity)
	})
}

func TestPDVItems(t *testing.T) {
	t.Run("mesmo serviço duas vezes gera linhas independentes", func(t *testing.T) {
		pdv := NewPDV()
		serviceID := uuid.New()
		id1, err := pdv.AddItem(ItemKindService, "Corte Masculino", dec("45.00"), serviceID)
		require.NoError(t, err)
		id2, err := pdv.AddItem(ItemKindService, "Corte Masculino", dec("45.00"), serviceID)
		require.NoError(t, err)

		assert.NotEqual(t, id1, id2)
		assert.Len(t, pdv.Items(), 2)
	})

	t.Run("remover id inexistente é no-op", func(t *testing.T) {
		pdv := NewPDV()
		_, err := pdv.AddItem(ItemKindService, "Corte", dec("45.00"), uuid.New())
		require.NoError(t, err)

		require.NoError(t, pdv.RemoveItem(uuid.New()))
		assert.Len(t, pdv.Items(), 1)
	})

	t.Run("preço é snapshot por linha", func(t *testing.T) {
		pdv := NewPDV()
		_, err := pdv.AddItem(ItemKindService, "Corte", dec("45.00"), uuid.New())
		require.NoError(t, err)

		// Nova inclusão com preço atualizado não afeta a linha antiga
		_, err = pdv.AddItem(ItemKindService, "Corte", dec("50.00"), uuid.New())
		require.NoError(t, err)

		items := pdv.Items()
		assert.True(t, items[0].UnitPrice.Equal(dec("45.00")))
		assert.True(t, items[1].UnitPrice.Equal(dec("50.00")))
	})
}

func TestPDVDiscount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"numérico", "10", "10"},
		{"decimal", "10.50", "10.50"},
		{"com espaços", " 15 ", "15"},
		{"texto inválido vale zero", "abc", "0"},
		{"vazio vale zero", "", "0"},
		{"negativo vale zero", "-5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdv := NewPDV()
			require.NoError(t, pdv.SetDiscount(tt.raw))
			assert.True(t, pdv.Discount().Equal(dec(tt.want)), "got %s", pdv.Discount())
		})
	}

	t.Run("desconto inválido equivale a zero nos totais", func(t *testing.T) {
		pdvInvalid := NewPDV()
		_, err := pdvInvalid.AddItem(ItemKindService, "Corte", dec("45.00"), uuid.New())
		require.NoError(t, err)
		require.NoError(t, pdvInvalid.SetDiscount("abc"))

		pdvZero := NewPDV()
		_, err = pdvZero.AddItem(ItemKindService, "Corte", dec("45.00"), uuid.New())
		require.NoError(t, err)
		require.NoError(t, pdvZero.SetDiscount("0"))

		assert.True(t, pdvInvalid.Totals().Total.Equal(pdvZero.Totals().Total))
	})
}

func TestPDVAddPayment(t *testing.T) {
	t.Run("valores rejeitados", func(t *testing.T) {
		for _, raw := range []string{"-5", "0", "abc", ""} {
			pdv := NewPDV()
			err := pdv.AddPayment(PaymentMethodCash, raw)
			assert.ErrorIs(t, err, ErrInvalidPaymentAmount, "raw=%q", raw)
			assert.Empty(t, pdv.Payments(), "raw=%q", raw)
		}
	})

	t.Run("método inválido rejeitado", func(t *testing.T) {
		pdv := NewPDV()
		err := pdv.AddPayment(PaymentMethod("cheque"), "10")
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	})

	t.Run("pagamentos válidos acumulam", func(t *testing.T) {
		pdv := NewPDV()
		require.NoError(t, pdv.AddPayment(PaymentMethodCash, "50"))
		require.NoError(t, pdv.AddPayment(PaymentMethodPix, "61"))

		assert.Len(t, pdv.Payments(), 2)
		assert.True(t, pdv.Totals().TotalPaid.Equal(dec("111.00")))
	})

	t.Run("remover por posição", func(t *testing.T) {
		pdv := NewPDV()
		require.NoError(t, pdv.AddPayment(PaymentMethodCash, "50"))
		require.NoError(t, pdv.AddPayment(PaymentMethodPix, "30"))

		require.NoError(t, pdv.RemovePayment(0))
		payments := pdv.Payments()
		require.Len(t, payments, 1)
		assert.Equal(t, PaymentMethodPix, payments[0].Method)

		// Fora do intervalo é no-op
		require.NoError(t, pdv.RemovePayment(5))
		require.NoError(t, pdv.RemovePayment(-1))
		assert.Len(t, pdv.Payments(), 1)
	})
}

func TestPDVCanFinish(t *testing.T) {
	t.Run("pagamento exato libera", func(t *testing.T) {
		pdv := buildCartWithDiscount(t)
		require.NoError(t, pdv.AddPayment(PaymentMethodCash, "50"))
		require.NoError(t, pdv.AddPayment(PaymentMethodPix, "61"))

		assert.True(t, pdv.Totals().Remaining.IsZero())
		assert.True(t, pdv.CanFinish())
	})

	t.Run("pagamento parcial bloqueia", func(t *testing.T) {
		pdv := buildCartWithDiscount(t)
		require.NoError(t, pdv.AddPayment(PaymentMethodCash, "50"))

		assert.True(t, pdv.Totals().Remaining.Equal(dec("61.00")))
		assert.False(t, pdv.CanFinish())
	})

	t.Run("pagamento a maior bloqueia", func(t *testing.T) {
		pdv := buildCartWithDiscount(t)
		require.NoError(t, pdv.AddPayment(PaymentMethodCash, "50"))
		require.NoError(t, pdv.AddPayment(PaymentMethodPix, "62"))

		assert.True(t, pdv.Totals().Remaining.Equal(dec("-1.00")))
		assert.False(t, pdv.CanFinish())
	})

	t.Run("carrinho vazio bloqueia mesmo com restante zero", func(t *testing.T) {
		pdv := NewPDV()
		assert.True(t, pdv.Totals().Remaining.IsZero())
		assert.False(t, pdv.CanFinish())
	})

	t.Run("diferença menor que um centavo libera", func(t *testing.T) {
		pdv := NewPDV()
		_, err := pdv.AddItem(ItemKindService, "Corte", dec("45.005"), uuid.New())
		require.NoError(t, err)
		require.NoError(t, pdv.AddPayment(PaymentMethodCash, "45.00"))

		// Total arredonda para 45.01, restante 0.01 → ainda bloqueia
		assert.False(t, pdv.CanFinish())

		require.NoError(t, pdv.AddPayment(PaymentMethodCash, "0.005"))
		// Pago arredonda para 45.01 junto com o total
		assert.True(t, pdv.CanFinish())
	})
}

func TestPDVFinish(t *testing.T) {
	t.Run("transição OPEN para SUBMITTED", func(t *testing.T) {
		pdv := buildCartWithDiscount(t)
		require.NoError(t, pdv.AddPayment(PaymentMethodCash, "111"))

		require.NoError(t, pdv.Finish())
		assert.Equal(t, PDVStateSubmitted, pdv.State())
	})

	t.Run("conciliação aberta impede finalizar", func(t *testing.T) {
		pdv := buildCartWithDiscount(t)
		require.NoError(t, pdv.AddPayment(PaymentMethodCash, "50"))

		assert.ErrorIs(t, pdv.Finish(), ErrPaymentMismatch)
		assert.Equal(t, PDVStateOpen, pdv.State())
	})

	t.Run("carrinho vazio impede finalizar", func(t *testing.T) {
		pdv := NewPDV()
		assert.ErrorIs(t, pdv.Finish(), ErrSaleMustHaveItems)
	})

	t.Run("sessão congelada rejeita mutações", func(t *testing.T) {
		pdv := buildCartWithDiscount(t)
		require.NoError(t, pdv.AddPayment(PaymentMethodCash, "111"))
		require.NoError(t, pdv.Finish())

		_, err := pdv.AddItem(ItemKindService, "Barba", dec("30.00"), uuid.New())
		assert.ErrorIs(t, err, ErrPDVSubmitted)
		assert.ErrorIs(t, pdv.RemoveItem(uuid.New()), ErrPDVSubmitted)
		assert.ErrorIs(t, pdv.SetQuantity(uuid.New(), 2), ErrPDVSubmitted)
		assert.ErrorIs(t, pdv.SetDiscount("20"), ErrPDVSubmitted)
		assert.ErrorIs(t, pdv.AddPayment(PaymentMethodPix, "10"), ErrPDVSubmitted)
		assert.ErrorIs(t, pdv.RemovePayment(0), ErrPDVSubmitted)
		assert.ErrorIs(t, pdv.Finish(), ErrPDVSubmitted)
	})
}
