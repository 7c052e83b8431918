package ecochain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterUserRequest represents a new user sign-up
type RegisterUserRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required,max=128"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Username      string `json:"username,omitempty" validate:"omitempty,max=64"`
}

// Profile is a user together with their analytics and latest activity
type Profile struct {
	User               *User          `json:"user"`
	Analytics          *UserAnalytics `json:"analytics"`
	RecentActions      []*EcoAction   `json:"recent_actions"`
	RecentTransactions []*Transaction `json:"recent_transactions"`
}

// SubmitEcoActionRequest represents an eco action claim
type SubmitEcoActionRequest struct {
	WalletAddress string      `json:"wallet_address" validate:"required,max=128"`
	ActionType    ActionType  `json:"action_type" validate:"required,oneof=energy water recycling transport planting"`
	Description   string      `json:"description"`
	AIAnalysis    *AIAnalysis `json:"ai_analysis,omitempty" validate:"omitempty"`
}

// VerifyEcoActionRequest carries the on-chain hash that verified an eco action
type VerifyEcoActionRequest struct {
	TransactionHash string `json:"transaction_hash" validate:"required,max=128"`
}

// CreateProposalRequest represents a new governance proposal.
// VotingPeriodDays is used when EndDate is not given.
type CreateProposalRequest struct {
	Title            string          `json:"title" validate:"required,max=255"`
	Description      string          `json:"description"`
	Proposer         string          `json:"proposer" validate:"required"`
	ProposerAddress  string          `json:"proposer_address"`
	Quorum           decimal.Decimal `json:"quorum" validate:"gte=0"`
	EndDate          *time.Time      `json:"end_date,omitempty"`
	VotingPeriodDays int             `json:"voting_period_days,omitempty" validate:"gte=0"`
}

// CastVoteRequest represents a ballot on a proposal
type CastVoteRequest struct {
	VoterAddress string          `json:"voter_address" validate:"required"`
	InFavor      bool            `json:"vote"`
	VotingPower  decimal.Decimal `json:"voting_power" validate:"gte=0"`
}

// SubmitTransactionRequest records a token movement that is still awaiting confirmation
type SubmitTransactionRequest struct {
	TransactionHash string          `json:"transaction_hash" validate:"required,max=128"`
	FromAddress     string          `json:"from_address" validate:"required,max=128"`
	ToAddress       string          `json:"to_address" validate:"max=128"`
	Amount          decimal.Decimal `json:"amount" validate:"gte=0"`
	Type            TxType          `json:"type" validate:"required,oneof=transfer stake unstake reward governance utility_payment"`
	GasUsed         *int64          `json:"gas_used,omitempty" validate:"omitempty,gte=0"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
}

// UpdateTransactionStatusRequest moves a pending transaction to a terminal status
type UpdateTransactionStatusRequest struct {
	Status      TxStatus `json:"status" validate:"required,oneof=confirmed failed"`
	BlockNumber *int64   `json:"block_number,omitempty" validate:"omitempty,gte=0"`
}

// StakeRequest represents a token lock
type StakeRequest struct {
	UserAddress     string          `json:"user_address" validate:"required,max=128"`
	Amount          decimal.Decimal `json:"amount" validate:"gt=0"`
	StakingPeriod   int             `json:"staking_period" validate:"min=1"`
	TransactionHash string          `json:"transaction_hash"`
}
