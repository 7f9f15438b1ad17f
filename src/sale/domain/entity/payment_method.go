package entity

// PaymentMethod representa uma forma de pagamento aceita no PDV
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodOther      PaymentMethod = "other"
)

// IsValid verifica se a forma de pagamento é conhecida
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix, PaymentMethodOther:
		return true
	}
	return false
}

// Label retorna o nome exibível da forma de pagamento
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCash:
		return "Dinheiro"
	case PaymentMethodCreditCard:
		return "Cartão Crédito"
	case PaymentMethodDebitCard:
		return "Cartão Débito"
	case PaymentMethodPix:
		return "PIX"
	case PaymentMethodOther:
		return "Outro"
	}
	return string(m)
}
