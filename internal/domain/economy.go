package domain

// ExchangeDirection selects which currency is spent in an exchange
type ExchangeDirection string

const (
	// ExchangeSoftToHard spends mcoin to buy stars
	ExchangeSoftToHard ExchangeDirection = "soft_to_hard"
	// ExchangeHardToSoft spends stars to buy mcoin
	ExchangeHardToSoft ExchangeDirection = "hard_to_soft"
)

// PaymentMethod selects the currency an upgrade is paid with
type PaymentMethod string

const (
	PaymentSoft PaymentMethod = "mcoin"
	PaymentHard PaymentMethod = "stars"
)

// SellResult is returned by a sale of resources
type SellResult struct {
	Resource     Resource `json:"resource"`
	Quantity     int64    `json:"quantity"`
	SoftGained   int64    `json:"mcoin_gained"`
	SoftCurrency int64    `json:"mcoin"`
}

// ExchangeResult reports balances after an exchange
type ExchangeResult struct {
	Direction    ExchangeDirection `json:"direction"`
	Stars        int64             `json:"stars_amount"`
	Mcoin        int64             `json:"mcoin_amount"`
	SoftCurrency int64             `json:"mcoin"`
	HardCurrency int64             `json:"stars"`
}

// UpgradeQuote prices the next equipment tier in both currencies
type UpgradeQuote struct {
	CurrentTier int   `json:"current_tier"`
	NextTier    int   `json:"next_tier"`
	MoneyCost   int64 `json:"mcoin_cost"`
	StarsCost   int64 `json:"stars_cost"`
}

// UpgradeResult is returned by a successful equipment upgrade
type UpgradeResult struct {
	NewTier      int           `json:"new_tier"`
	Method       PaymentMethod `json:"method"`
	Cost         int64         `json:"cost"`
	SoftCurrency int64         `json:"mcoin"`
	HardCurrency int64         `json:"stars"`
}
