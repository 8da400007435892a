package store

// Reader is the read-side data access surface the query layer builds on.
// Every method is strict: storage faults come back as errors and a missing
// row is (nil, nil). Store implements it directly over SQLite.
type Reader interface {
	// Entities
	CasinoByID(id string) (*Casino, error)
	AllCasinos() ([]Casino, error)
	TopCasinos(limit int) ([]Casino, error)
	CasinosByIDs(ids []string) ([]Casino, error)
	CasinosByPaymentMethod(methodID string, limit int) ([]CasinoSummary, error)
	CasinosBySoftwareProvider(providerID string, limit int) ([]Casino, error)

	SlotBySlug(slug string) (*Slot, error)
	AllSlots() ([]Slot, error)
	FeaturedSlots(limit int) ([]Slot, error)
	SlotsByProvider(providerID string) ([]Slot, error)
	SlotWithProvider(slug string) (*SlotProvider, error)

	SoftwareProviderByID(id string) (*SoftwareProvider, error)
	AllSoftwareProviders() ([]SoftwareProvider, error)
	SoftwareProvidersWithCounts() ([]ProviderGameCount, error)

	PaymentMethodByID(id string) (*PaymentMethod, error)
	AllPaymentMethods() ([]PaymentMethod, error)
	LowestDepositMethod(casinoID string) (*DepositMethod, error)

	// Junctions, single-key and batch form
	CasinoPaymentMethods(casinoID string) ([]PaymentMethod, error)
	PaymentMethodsForCasinos(casinoIDs []string) ([]CasinoPayment, error)
	CasinoSoftwareProviders(casinoID string) ([]SoftwareProvider, error)
	SoftwareProvidersForCasinos(casinoIDs []string) ([]CasinoSoftware, error)

	// Minimal projections
	CatalogEntries(kind EntryKind) ([]Entry, error)
}

// Compile-time check: *Store satisfies Reader.
var _ Reader = (*Store)(nil)
