package store

// Catalog entity types. Nullable columns are pointers; data may be
// incomplete at ingestion time.

type Casino struct {
	ID                 string   `json:"id" yaml:"id"`
	Name               string   `json:"name" yaml:"name"`
	WebsiteURL         *string  `json:"website_url" yaml:"website_url"`
	Established        *int     `json:"established" yaml:"established"`
	License            *string  `json:"license" yaml:"license"`
	Owner              *string  `json:"owner" yaml:"owner"`
	PayoutSpeedMinutes *int     `json:"payout_speed_minutes" yaml:"payout_speed_minutes"`
	PayoutRatio        *float64 `json:"payout_ratio" yaml:"payout_ratio"`
	ThemeColor         *string  `json:"theme_color" yaml:"theme_color"`
	LogoURL            *string  `json:"logo_url" yaml:"logo_url"`
	ThumbnailURL       *string  `json:"thumbnail_url" yaml:"thumbnail_url"`
	BonusOffer         *string  `json:"bonus_offer" yaml:"bonus_offer"`
	BonusSpins         *int     `json:"bonus_spins" yaml:"bonus_spins"`
}

type Slot struct {
	Slug        string   `json:"slug" yaml:"slug"`
	Title       string   `json:"title" yaml:"title"`
	ProviderID  *string  `json:"provider_id" yaml:"provider_id"`
	RTP         *float64 `json:"rtp" yaml:"rtp"`
	Volatility  *string  `json:"volatility" yaml:"volatility"`
	MaxWin      *string  `json:"max_win" yaml:"max_win"`
	Paylines    *string  `json:"paylines" yaml:"paylines"`
	ReleaseDate *string  `json:"release_date" yaml:"release_date"`
	Description *string  `json:"description" yaml:"description"`
	ImageURL    *string  `json:"image_url" yaml:"image_url"`
	Featured    bool     `json:"featured" yaml:"featured"`
	MinBet      *float64 `json:"min_bet" yaml:"min_bet"`
	MaxBet      *float64 `json:"max_bet" yaml:"max_bet"`
	Layout      *string  `json:"layout" yaml:"layout"`
	Features    []string `json:"features" yaml:"features"`
}

type SoftwareProvider struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	LogoURL *string `json:"logo_url" yaml:"logo_url"`
}

type PaymentMethod struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	LogoURL       *string  `json:"logo_url" yaml:"logo_url"`
	Description   *string  `json:"description" yaml:"description"`
	Type          *string  `json:"type" yaml:"type"`
	AvgSpeed      *string  `json:"avg_speed" yaml:"avg_speed"`
	Fees          *string  `json:"fees" yaml:"fees"`
	MinDeposit    *float64 `json:"min_deposit" yaml:"min_deposit"`
	MaxWithdrawal *float64 `json:"max_withdrawal" yaml:"max_withdrawal"`
	Pros          []string `json:"pros" yaml:"pros"`
	Cons          []string `json:"cons" yaml:"cons"`
}

// Junction rows as stored.

type CasinoSoftwareLink struct {
	CasinoID   string `yaml:"casino_id"`
	ProviderID string `yaml:"provider_id"`
}

type CasinoPaymentLink struct {
	CasinoID string `yaml:"casino_id"`
	MethodID string `yaml:"method_id"`
}

// Batch-form join results: the related row annotated with its owner key.

type CasinoPayment struct {
	CasinoID string
	PaymentMethod
}

type CasinoSoftware struct {
	CasinoID string
	SoftwareProvider
}

// Derived query shapes.

// SlotProvider is a slot joined to its (optional) provider.
type SlotProvider struct {
	Slot
	ProviderName    *string
	ProviderLogoURL *string
}

// ProviderGameCount is a provider with the number of slots it backs.
type ProviderGameCount struct {
	SoftwareProvider
	GameCount int `json:"game_count"`
}

// DepositMethod is the cheapest way to fund a casino account.
type DepositMethod struct {
	Name       string  `json:"name"`
	MinDeposit float64 `json:"min_deposit"`
}

// CasinoSummary is the card-sized projection of a casino used on
// payment-method and provider pages.
type CasinoSummary struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	LogoURL            *string `json:"logo_url"`
	BonusOffer         *string `json:"bonus_offer"`
	PayoutSpeedMinutes *int    `json:"payout_speed_minutes"`
}

// Entry is the minimal key + display name projection of any entity.
type Entry struct {
	Key   string
	Title string
}

// EntryKind selects the table behind CatalogEntries.
type EntryKind string

const (
	KindCasino        EntryKind = "casino"
	KindSlot          EntryKind = "slot"
	KindPaymentMethod EntryKind = "payment_method"
)
