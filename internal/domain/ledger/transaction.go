package ledger

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Type string

const (
	TypeDonation Type = "donation"
	TypeSend     Type = "send"
	TypeReceive  Type = "receive"
)

// Transaction é imutável depois de criada: entra no ledger e nunca é
// alterada ou removida durante a vida do processo.
type Transaction struct {
	Id            ulid.ULID `json:"id"`
	Type          Type      `json:"type"`
	Amount        float64   `json:"amount"`
	PlatformFee   float64   `json:"platformFee,omitempty"`
	CharityAmount float64   `json:"charityAmount,omitempty"`
	Impact        int       `json:"impact,omitempty"`
	ImpactMetric  string    `json:"impactMetric,omitempty"`
	CharityId     string    `json:"charityId,omitempty"`
	CharityName   string    `json:"charityName,omitempty"`
	Recipient     string    `json:"recipient,omitempty"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
