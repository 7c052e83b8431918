// Package ecostore persists the EcoChain collections in PostgreSQL.
//
// Reads that find nothing return a nil record and a nil error. Every mutation is issued as a
// single SQL statement so concurrent callers never observe a partially applied change.
package ecostore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecochain/ecochain-api/pkg/ecochain"
)

// Default page sizes for the list operations when the caller passes a non-positive limit.
const (
	DefaultEcoActionLimit   = 10
	DefaultTransactionLimit = 20
)

// UserStore defines user persistence operations.
type UserStore interface {
	CreateUser(ctx context.Context, u *ecochain.User) (*ecochain.User, error)
	GetUserByWallet(ctx context.Context, walletAddress string) (*ecochain.User, error)
	// UpdateUserBalance sets the balance, bumps last_active and counts one more eco action.
	UpdateUserBalance(ctx context.Context, walletAddress string, balance decimal.Decimal) error
	// UpdateUserEcoScore sets the score and adds carbonOffsetDelta to the cumulative offset.
	UpdateUserEcoScore(ctx context.Context, walletAddress string, score float64, carbonOffsetDelta decimal.Decimal) error
	// CreditEcoReward applies a verified action's reward, offset and score gain in one update.
	// The score is capped at 100.
	CreditEcoReward(ctx context.Context, walletAddress string, reward, carbonOffset decimal.Decimal, scoreDelta float64) error
}

// EcoActionStore defines eco action persistence operations.
type EcoActionStore interface {
	CreateEcoAction(ctx context.Context, a *ecochain.EcoAction) (*ecochain.EcoAction, error)
	GetEcoAction(ctx context.Context, id uuid.UUID) (*ecochain.EcoAction, error)
	ListEcoActionsByUser(ctx context.Context, walletAddress string, limit int) ([]*ecochain.EcoAction, error)
	// VerifyEcoAction moves a pending action to verified. It reports whether this call made the
	// transition; repeating it with the same hash is a no-op.
	VerifyEcoAction(ctx context.Context, id uuid.UUID, transactionHash string) (bool, error)
	RejectEcoAction(ctx context.Context, id uuid.UUID) (bool, error)
	// VerifyEcoActionAndCredit verifies a pending action and credits its owner in one transaction:
	// the reward, the carbon offset and a score gain of carbon offset × scorePerCarbonUnit (capped
	// at 100). If the credit fails the action stays pending. Repeats follow VerifyEcoAction.
	VerifyEcoActionAndCredit(
		ctx context.Context,
		id uuid.UUID,
		transactionHash string,
		scorePerCarbonUnit decimal.Decimal,
	) (bool, error)
}

// GovernanceStore defines governance proposal persistence operations.
type GovernanceStore interface {
	CreateProposal(ctx context.Context, p *ecochain.GovernanceProposal) (*ecochain.GovernanceProposal, error)
	GetProposal(ctx context.Context, id uuid.UUID) (*ecochain.GovernanceProposal, error)
	// GetActiveProposals returns active proposals whose end date is still ahead, newest first.
	GetActiveProposals(ctx context.Context) ([]*ecochain.GovernanceProposal, error)
	VoteOnProposal(ctx context.Context, id uuid.UUID, voterAddress string, inFavor bool, votingPower decimal.Decimal) error
}

// TransactionStore defines transaction persistence operations.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx *ecochain.Transaction) (*ecochain.Transaction, error)
	GetTransactionByHash(ctx context.Context, hash string) (*ecochain.Transaction, error)
	// ListTransactionsByUser returns transactions sent from or to the address, newest first.
	ListTransactionsByUser(ctx context.Context, address string, limit int) ([]*ecochain.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, hash string, status ecochain.TxStatus, blockNumber *int64) error
}

// StakingStore defines staking record persistence operations.
type StakingStore interface {
	CreateStakingRecord(ctx context.Context, s *ecochain.StakingRecord) (*ecochain.StakingRecord, error)
	GetActiveStakingRecords(ctx context.Context, userAddress string) ([]*ecochain.StakingRecord, error)
	GetStakingRecord(ctx context.Context, id uuid.UUID) (*ecochain.StakingRecord, error)
	UpdateStakingRewards(ctx context.Context, id uuid.UUID, rewardsEarned decimal.Decimal) error
	UpdateStakingStatus(ctx context.Context, id uuid.UUID, status ecochain.StakingStatus) error
}

// StatsStore defines platform statistics and analytics operations.
type StatsStore interface {
	UpsertPlatformStats(ctx context.Context, s *ecochain.PlatformStats) (*ecochain.PlatformStats, error)
	GetLatestPlatformStats(ctx context.Context) (*ecochain.PlatformStats, error)
	GetUserAnalytics(ctx context.Context, walletAddress string) (*ecochain.UserAnalytics, error)
	// CountPlatformTotals aggregates the collections; users seen since activeSince count as active.
	CountPlatformTotals(ctx context.Context, activeSince time.Time) (*ecochain.PlatformTotals, error)
}

// Store defines every EcoChain persistence operation.
type Store interface {
	UserStore
	EcoActionStore
	GovernanceStore
	TransactionStore
	StakingStore
	StatsStore
}

// Option configures the postgres store.
type Option func(*pgStore)

// WithClock overrides the time source used for last_active, verified_at and vote timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *pgStore) {
		s.now = now
	}
}
