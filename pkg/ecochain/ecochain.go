// Package ecochain holds the domain model of the EcoChain platform: users, eco actions,
// governance proposals, transactions, staking records and platform statistics.
package ecochain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a platform participant identified by wallet address.
type User struct {
	ID                uuid.UUID       `json:"id"`
	WalletAddress     string          `json:"wallet_address" validate:"required,max=128"`
	Email             string          `json:"email,omitempty" validate:"omitempty,email"`
	Username          string          `json:"username,omitempty" validate:"omitempty,max=64"`
	EcoTokenBalance   decimal.Decimal `json:"eco_token_balance" validate:"gte=0"`
	StakedTokens      decimal.Decimal `json:"staked_tokens" validate:"gte=0"`
	StakingRewards    decimal.Decimal `json:"staking_rewards" validate:"gte=0"`
	TotalEcoActions   int64           `json:"total_eco_actions" validate:"gte=0"`
	TotalCarbonOffset decimal.Decimal `json:"total_carbon_offset" validate:"gte=0"`
	EcoScore          float64         `json:"eco_score" validate:"gte=0,lte=100"`
	JoinedAt          time.Time       `json:"joined_at" validate:"required"`
	LastActive        time.Time       `json:"last_active"`
	Tier              Tier            `json:"tier" validate:"required,oneof=beginner intermediate advanced expert"`
	Achievements      []string        `json:"achievements"`
}

// AIAnalysis is the optional impact assessment attached to an eco action.
type AIAnalysis struct {
	ImpactScore          float64  `json:"impact_score" validate:"gte=0"`
	Confidence           float64  `json:"confidence" validate:"gte=0,lte=1"`
	SustainabilityRating float64  `json:"sustainability_rating" validate:"gte=0"`
	Recommendations      []string `json:"recommendations"`
}

// EcoAction is a user-submitted claim of sustainable behaviour.
type EcoAction struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id" validate:"required"`
	WalletAddress      string          `json:"wallet_address" validate:"required,max=128"`
	ActionType         ActionType      `json:"action_type" validate:"required,oneof=energy water recycling transport planting"`
	Description        string          `json:"description"`
	EcoReward          decimal.Decimal `json:"eco_reward" validate:"gte=0"`
	CarbonOffset       decimal.Decimal `json:"carbon_offset" validate:"gte=0"`
	VerificationMethod string          `json:"verification_method"`
	Status             ActionStatus    `json:"status" validate:"required,oneof=pending verified rejected"`
	AIAnalysis         *AIAnalysis     `json:"ai_analysis,omitempty" validate:"omitempty"`
	Timestamp          time.Time       `json:"timestamp" validate:"required"`
	VerifiedAt         *time.Time      `json:"verified_at,omitempty"`
	TransactionHash    string          `json:"transaction_hash,omitempty"`
}

// Vote is a single append-only ballot on a proposal.
type Vote struct {
	VoterAddress string          `json:"voter_address" validate:"required"`
	InFavor      bool            `json:"vote"`
	VotingPower  decimal.Decimal `json:"voting_power" validate:"gte=0"`
	Timestamp    time.Time       `json:"timestamp"`
}

// GovernanceProposal is a votable platform-change request.
type GovernanceProposal struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title" validate:"required,max=255"`
	Description     string          `json:"description"`
	Proposer        string          `json:"proposer" validate:"required"`
	ProposerAddress string          `json:"proposer_address"`
	Status          ProposalStatus  `json:"status" validate:"required,oneof=active passed rejected executed"`
	VotesFor        decimal.Decimal `json:"votes_for" validate:"gte=0"`
	VotesAgainst    decimal.Decimal `json:"votes_against" validate:"gte=0"`
	Quorum          decimal.Decimal `json:"quorum" validate:"gte=0"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date" validate:"required,gtfield=StartDate"`
	CreatedAt       time.Time       `json:"created_at" validate:"required"`
	Votes           []Vote          `json:"votes" validate:"dive"`
}

// TotalVotes returns the voting power cast so far in either direction.
func (p *GovernanceProposal) TotalVotes() decimal.Decimal {
	return p.VotesFor.Add(p.VotesAgainst)
}

// QuorumReached reports whether the cast voting power meets the quorum threshold.
func (p *GovernanceProposal) QuorumReached() bool {
	return p.TotalVotes().GreaterThanOrEqual(p.Quorum)
}

// Transaction is a platform token movement identified by its hash.
type Transaction struct {
	ID              uuid.UUID       `json:"id"`
	TransactionHash string          `json:"transaction_hash" validate:"required,max=128"`
	FromAddress     string          `json:"from_address" validate:"required,max=128"`
	ToAddress       string          `json:"to_address" validate:"max=128"`
	Amount          decimal.Decimal `json:"amount" validate:"gte=0"`
	Type            TxType          `json:"type" validate:"required,oneof=transfer stake unstake reward governance utility_payment"`
	Status          TxStatus        `json:"status" validate:"required,oneof=pending confirmed failed"`
	BlockNumber     *int64          `json:"block_number,omitempty" validate:"omitempty,gte=0"`
	GasUsed         *int64          `json:"gas_used,omitempty" validate:"omitempty,gte=0"`
	Timestamp       time.Time       `json:"timestamp" validate:"required"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
}

// StakingRecord is a token lock for a number of days.
type StakingRecord struct {
	ID              uuid.UUID       `json:"id"`
	UserAddress     string          `json:"user_address" validate:"required,max=128"`
	Amount          decimal.Decimal `json:"amount" validate:"gte=0"`
	StakingPeriod   int             `json:"staking_period" validate:"min=1"`
	StartDate       time.Time       `json:"start_date" validate:"required"`
	EndDate         time.Time       `json:"end_date"`
	Status          StakingStatus   `json:"status" validate:"required,oneof=active completed withdrawn"`
	RewardsEarned   decimal.Decimal `json:"rewards_earned" validate:"gte=0"`
	TransactionHash string          `json:"transaction_hash"`
}

// PlatformStats is a per-day snapshot of platform totals.
type PlatformStats struct {
	ID                      uuid.UUID       `json:"id"`
	Date                    time.Time       `json:"date" validate:"required"`
	TotalUsers              int64           `json:"total_users" validate:"gte=0"`
	ActiveUsers             int64           `json:"active_users" validate:"gte=0"`
	TotalEcoActions         int64           `json:"total_eco_actions" validate:"gte=0"`
	TotalCarbonOffset       decimal.Decimal `json:"total_carbon_offset" validate:"gte=0"`
	EcoTokensDistributed    decimal.Decimal `json:"eco_tokens_distributed" validate:"gte=0"`
	TotalStaked             decimal.Decimal `json:"total_staked" validate:"gte=0"`
	GovernanceParticipation float64         `json:"governance_participation" validate:"gte=0,lte=100"`
	UtilityPaymentsVolume   decimal.Decimal `json:"utility_payments_volume" validate:"gte=0"`
}

// UserAnalytics is a read-only aggregation over one user's activity.
type UserAnalytics struct {
	WalletAddress     string               `json:"wallet_address"`
	EcoTokenBalance   decimal.Decimal      `json:"eco_token_balance"`
	EcoScore          float64              `json:"eco_score"`
	TotalCarbonOffset decimal.Decimal      `json:"total_carbon_offset"`
	ActionsCount      int64                `json:"actions_count"`
	TransactionsCount int64                `json:"transactions_count"`
	ActionsByType     map[ActionType]int64 `json:"actions_by_type"`
}

// PlatformTotals are the raw figures a stats snapshot is built from.
type PlatformTotals struct {
	TotalUsers            int64
	ActiveUsers           int64
	TotalEcoActions       int64
	TotalCarbonOffset     decimal.Decimal
	EcoTokensDistributed  decimal.Decimal
	TotalStaked           decimal.Decimal
	Voters                int64
	UtilityPaymentsVolume decimal.Decimal
}

// SnapshotDate truncates t to the UTC calendar day used to key platform stats.
func SnapshotDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
