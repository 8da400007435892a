package store

// Batch buffers a full catalog load in memory so it can be committed in one
// transaction. The offline loader builds a Batch from a seed file and hands
// it to Store.CommitBatch.
type Batch struct {
	Casinos        []Casino
	Providers      []SoftwareProvider
	PaymentMethods []PaymentMethod
	Slots          []Slot
	SoftwareLinks  []CasinoSoftwareLink
	PaymentLinks   []CasinoPaymentLink
}

// NewBatch returns an empty Batch.
func NewBatch() *Batch {
	return &Batch{}
}

func (b *Batch) AddCasino(c Casino) {
	b.Casinos = append(b.Casinos, c)
}

func (b *Batch) AddProvider(p SoftwareProvider) {
	b.Providers = append(b.Providers, p)
}

func (b *Batch) AddPaymentMethod(pm PaymentMethod) {
	b.PaymentMethods = append(b.PaymentMethods, pm)
}

func (b *Batch) AddSlot(sl Slot) {
	b.Slots = append(b.Slots, sl)
}

func (b *Batch) LinkSoftware(casinoID, providerID string) {
	b.SoftwareLinks = append(b.SoftwareLinks, CasinoSoftwareLink{CasinoID: casinoID, ProviderID: providerID})
}

func (b *Batch) LinkPaymentMethod(casinoID, methodID string) {
	b.PaymentLinks = append(b.PaymentLinks, CasinoPaymentLink{CasinoID: casinoID, MethodID: methodID})
}

// Len returns the total number of rows the batch will insert.
func (b *Batch) Len() int {
	return len(b.Casinos) + len(b.Providers) + len(b.PaymentMethods) +
		len(b.Slots) + len(b.SoftwareLinks) + len(b.PaymentLinks)
}
