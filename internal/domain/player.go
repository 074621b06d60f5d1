package domain

import "time"

// Resource is an ore kind a player can mine and sell
type Resource string

const (
	ResourceCoal    Resource = "coal"
	ResourceCopper  Resource = "copper"
	ResourceIron    Resource = "iron"
	ResourceGold    Resource = "gold"
	ResourceDiamond Resource = "diamond"
)

// Resources lists every resource in canonical order. Rolls, tie-breaks and
// persisted columns all follow this order.
var Resources = []Resource{
	ResourceCoal,
	ResourceCopper,
	ResourceIron,
	ResourceGold,
	ResourceDiamond,
}

// ParseResource validates a client-supplied resource name
func ParseResource(name string) (Resource, bool) {
	for _, r := range Resources {
		if string(r) == name {
			return r, true
		}
	}
	return "", false
}

// Equipment tier bounds
const (
	MinEquipmentTier = 0
	MaxEquipmentTier = 10
)

// Player is the persisted state of one Telegram user
type Player struct {
	ID            int64              `json:"id"`
	TelegramID    int64              `json:"telegram_id"`
	Username      string             `json:"username,omitempty"`
	FirstName     string             `json:"first_name,omitempty"`
	EquipmentTier int                `json:"equipment_tier"`
	SoftCurrency  int64              `json:"mcoin"`
	HardCurrency  int64              `json:"stars"`
	Resources     map[Resource]int64 `json:"resources"`
	LastMineAt    *time.Time         `json:"last_mine_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// Resource returns the held quantity of r (zero when absent)
func (p *Player) Resource(r Resource) int64 {
	if p.Resources == nil {
		return 0
	}
	return p.Resources[r]
}

// Identity is the caller as asserted by the upstream gateway
type Identity struct {
	TelegramID int64
	Username   string
	FirstName  string
}

// Delta is a relative change applied to a player row in one statement.
// Zero fields leave the column untouched.
type Delta struct {
	Soft      int64
	Hard      int64
	Resources map[Resource]int64
}

// IsZero reports whether applying the delta would change nothing
func (d Delta) IsZero() bool {
	if d.Soft != 0 || d.Hard != 0 {
		return false
	}
	for _, q := range d.Resources {
		if q != 0 {
			return false
		}
	}
	return true
}

// Profile is the player view returned to the mini-app
type Profile struct {
	Player          *Player `json:"player"`
	MineCooldownMS  int64   `json:"mine_cooldown_ms"`
	NextUpgradeCost *int64  `json:"next_upgrade_cost,omitempty"`
	LadderActive    bool    `json:"ladder_active"`
}
