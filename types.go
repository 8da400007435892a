package catalog

import "github.com/jward/catalog/internal/store"

// Public type aliases for internal store types used in the QueryBuilder API.
// These are Go type aliases (=), identical to the internal types at compile
// time. External consumers use these names; no conversion is needed.

type Store = store.Store
type Driver = store.Driver
type Casino = store.Casino
type Slot = store.Slot
type SoftwareProvider = store.SoftwareProvider
type PaymentMethod = store.PaymentMethod
type CasinoSummary = store.CasinoSummary
type ProviderGameCount = store.ProviderGameCount
type DepositMethod = store.DepositMethod
type CasinoPayment = store.CasinoPayment
type CasinoSoftware = store.CasinoSoftware

const (
	DriverCGO  = store.DriverCGO
	DriverPure = store.DriverPure
)

// Composite entities. These are assembled at read time and never stored.
// Relation lists are never nil: a casino with no links carries an empty list.

type CasinoWithPayments struct {
	Casino
	Payments []PaymentMethod `json:"payments"`
}

type CasinoWithSoftware struct {
	Casino
	Software []SoftwareProvider `json:"software"`
}

type CasinoWithRelations struct {
	Casino
	Payments []PaymentMethod    `json:"payments"`
	Software []SoftwareProvider `json:"software"`
}

// SlotWithProvider is a slot with its provider attached, when it has one.
type SlotWithProvider struct {
	Slot
	Provider *SoftwareProvider `json:"provider,omitempty"`
}

// SearchEntry is one row of the site search index.
type SearchEntry struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}
