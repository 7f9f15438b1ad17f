package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PDVState representa o estado da sessão de PDV
type PDVState string

const (
	PDVStateOpen      PDVState = "OPEN"
	PDVStateSubmitted PDVState = "SUBMITTED"
)

// centTolerance: diferença máxima tolerada na conciliação (meio caminho de 1 centavo)
var centTolerance = decimal.New(1, -2) // 0.01

// ItemKind distingue serviço de produto no carrinho
type ItemKind string

const (
	ItemKindService ItemKind = "service"
	ItemKindProduct ItemKind = "product"
)

// CartItem é uma linha do carrinho do PDV.
// O preço é um snapshot do catálogo no momento da inclusão: alterações
// posteriores de preço não afetam um carrinho aberto.
type CartItem struct {
	ID        uuid.UUID
	Kind      ItemKind
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	ServiceID *uuid.UUID
	ProductID *uuid.UUID
}

// PaymentEntry é um pagamento parcial lançado no PDV
type PaymentEntry struct {
	Method PaymentMethod
	Amount decimal.Decimal
}

// PDVTotals agrega os valores derivados da sessão, todos arredondados a 2 casas
type PDVTotals struct {
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	TotalPaid decimal.Decimal
	Remaining decimal.Decimal
}

// PDV mantém o carrinho e os pagamentos de uma venda em composição.
// A sessão pertence a uma única tela de venda: sem concorrência, sem I/O.
// Após Finish() a sessão fica congelada; o chamador descarta e cria outra.
type PDV struct {
	state       PDVState
	items       []CartItem
	payments    []PaymentEntry
	discountRaw string
}

// NewPDV cria uma sessão de PDV vazia
func NewPDV() *PDV {
	return &PDV{
		state:       PDVStateOpen,
		discountRaw: "0",
	}
}

// State retorna o estado atual da sessão
func (p *PDV) State() PDVState {
	return p.state
}

// Items retorna uma cópia das linhas do carrinho
func (p *PDV) Items() []CartItem {
	out := make([]CartItem, len(p.items))
	copy(out, p.items)
	return out
}

// Payments retorna uma cópia dos pagamentos lançados
func (p *PDV) Payments() []PaymentEntry {
	out := make([]PaymentEntry, len(p.payments))
	copy(out, p.payments)
	return out
}

// AddItem inclui uma linha no carrinho com quantidade 1 e preço copiado do
// catálogo. Incluir o mesmo serviço duas vezes gera duas linhas independentes.
func (p *PDV) AddItem(kind ItemKind, name string, unitPrice decimal.Decimal, refID uuid.UUID) (uuid.UUID, error) {
	if p.state != PDVStateOpen {
		return uuid.Nil, ErrPDVSubmitted
	}
	if name == "" {
		return uuid.Nil, ErrItemNameRequired
	}
	if unitPrice.LessThan(decimal.Zero) {
		return uuid.Nil, ErrInvalidPrice
	}

	item := CartItem{
		ID:        uuid.New(),
		Kind:      kind,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	}
	ref := refID
	switch kind {
	case ItemKindService:
		item.ServiceID = &ref
	case ItemKindProduct:
		item.ProductID = &ref
	default:
		return uuid.Nil, ErrItemReferenceRequired
	}

	p.items = append(p.items, item)
	return item.ID, nil
}

// RemoveItem remove a linha pelo id; no-op se não existir
func (p *PDV) RemoveItem(id uuid.UUID) error {
	if p.state != PDVStateOpen {
		return ErrPDVSubmitted
	}
	for i, item := range p.items {
		if item.ID == id {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetQuantity substitui a quantidade da linha. Quantidade < 1 é ignorada
// (piso deliberado, nunca remove a linha). Linha inexistente é no-op.
func (p *PDV) SetQuantity(id uuid.UUID, quantity int) error {
	if p.state != PDVStateOpen {
		return ErrPDVSubmitted
	}
	if quantity < 1 {
		return nil
	}
	for i := range p.items {
		if p.items[i].ID == id {
			p.items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// SetDiscount guarda o texto bruto do campo de desconto. O valor efetivo é
// resolvido em Totals(): falha de parse vale 0, nunca vira erro para o usuário.
func (p *PDV) SetDiscount(raw string) error {
	if p.state != PDVStateOpen {
		return ErrPDVSubmitted
	}
	p.discountRaw = raw
	return nil
}

// Discount retorna o desconto efetivo: texto inválido ou negativo vale 0
func (p *PDV) Discount() decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(p.discountRaw))
	if err != nil || d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}

// AddPayment lança um pagamento parcial. Valor não numérico ou <= 0 é
// rejeitado com ErrInvalidPaymentAmount e a lista não é alterada.
func (p *PDV) AddPayment(method PaymentMethod, rawAmount string) error {
	if p.state != PDVStateOpen {
		return ErrPDVSubmitted
	}
	if !method.IsValid() {
		return ErrInvalidPaymentMethod
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPaymentAmount
	}
	p.payments = append(p.payments, PaymentEntry{Method: method, Amount: amount})
	return nil
}

// RemovePayment remove o pagamento pela posição; no-op fora do intervalo
func (p *PDV) RemovePayment(index int) error {
	if p.state != PDVStateOpen {
		return ErrPDVSubmitted
	}
	if index < 0 || index >= len(p.payments) {
		return nil
	}
	p.payments = append(p.payments[:index], p.payments[index+1:]...)
	return nil
}

// Totals calcula os agregados da sessão. O arredondamento a 2 casas acontece
// depois da aritmética, sobre decimais exatos (sem deriva de ponto flutuante).
func (p *PDV) Totals() PDVTotals {
	subtotal := decimal.Zero
	for _, item := range p.items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	subtotal = subtotal.Round(2)

	discount := p.Discount().Round(2)
	total := subtotal.Sub(discount).Round(2)

	totalPaid := decimal.Zero
	for _, payment := range p.payments {
		totalPaid = totalPaid.Add(payment.Amount)
	}
	totalPaid = totalPaid.Round(2)

	remaining := total.Sub(totalPaid).Round(2)

	return PDVTotals{
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     total,
		TotalPaid: totalPaid,
		Remaining: remaining,
	}
}

// CanFinish é o portão de conciliação: carrinho não vazio e |restante| < 0.01.
// Troco (restante negativo) de 1 centavo ou mais também bloqueia — o excedente
// é informativo na tela, mas a conciliação exige valor exato ao centavo.
func (p *PDV) CanFinish() bool {
	if len(p.items) == 0 {
		return false
	}
	remaining := p.Totals().Remaining
	return remaining.Abs().LessThan(centTolerance)
}

// Finish congela a sessão (OPEN → SUBMITTED). Só transiciona quando a
// conciliação fecha; a persistência em si é responsabilidade do caso de uso.
func (p *PDV) Finish() error {
	if p.state != PDVStateOpen {
		return ErrPDVSubmitted
	}
	if len(p.items) == 0 {
		return ErrSaleMustHaveItems
	}
	if !p.CanFinish() {
		return ErrPaymentMismatch
	}
	p.state = PDVStateSubmitted
	return nil
}
