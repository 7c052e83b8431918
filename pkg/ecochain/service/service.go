package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ecochain/ecochain-api/internal/metrics"
	apperrors "github.com/ecochain/ecochain-api/pkg/app/errors"
	"github.com/ecochain/ecochain-api/pkg/ecochain"
)

// Constants for the EcoChain service
const (
	// welcomeBonus is credited to every newly registered user
	welcomeBonus = 100

	// defaultVotingPeriodDays is used when a proposal gives neither an end date nor a period
	defaultVotingPeriodDays = 7

	// verificationMethod is recorded on every submitted eco action
	verificationMethod = "IoT Device Verification"

	// scorePerCarbonUnit converts a verified action's carbon offset into eco score
	scorePerCarbonUnit = 10

	profileActionLimit      = 5
	profileTransactionLimit = 10

	// history limits apply when the caller gives none
	defaultActionHistoryLimit      = 10
	defaultTransactionHistoryLimit = 20
	maxHistoryLimit                = 100

	achievementWelcomeBonus = "welcome_bonus"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEcoActionNotFound   = errors.New("eco action not found")
	ErrProposalNotFound    = errors.New("proposal not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrStakeNotFound       = errors.New("staking record not found")
	ErrStakeNotMatured     = errors.New("staking period has not ended")
	ErrStatsNotFound       = errors.New("platform stats not found")
)

// reward is what an eco action of a given type earns once verified
type reward struct {
	tokens       decimal.Decimal
	carbonOffset decimal.Decimal
}

var rewards = map[ecochain.ActionType]reward{
	ecochain.ActionEnergy:    {tokens: decimal.NewFromInt(25), carbonOffset: decimal.RequireFromString("0.12")},
	ecochain.ActionWater:     {tokens: decimal.NewFromInt(20), carbonOffset: decimal.RequireFromString("0.08")},
	ecochain.ActionRecycling: {tokens: decimal.NewFromInt(30), carbonOffset: decimal.RequireFromString("0.10")},
	ecochain.ActionTransport: {tokens: decimal.NewFromInt(40), carbonOffset: decimal.RequireFromString("0.25")},
	ecochain.ActionPlanting:  {tokens: decimal.NewFromInt(50), carbonOffset: decimal.RequireFromString("0.35")},
}

// Store is the narrow data-access interface for the EcoChain service.
// ecostore.Store satisfies it.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateUser(ctx context.Context, u *ecochain.User) (*ecochain.User, error)
	GetUserByWallet(ctx context.Context, walletAddress string) (*ecochain.User, error)

	CreateEcoAction(ctx context.Context, a *ecochain.EcoAction) (*ecochain.EcoAction, error)
	GetEcoAction(ctx context.Context, id uuid.UUID) (*ecochain.EcoAction, error)
	ListEcoActionsByUser(ctx context.Context, walletAddress string, limit int) ([]*ecochain.EcoAction, error)
	VerifyEcoActionAndCredit(
		ctx context.Context,
		id uuid.UUID,
		transactionHash string,
		scorePerCarbonUnit decimal.Decimal,
	) (bool, error)
	RejectEcoAction(ctx context.Context, id uuid.UUID) (bool, error)

	CreateProposal(ctx context.Context, p *ecochain.GovernanceProposal) (*ecochain.GovernanceProposal, error)
	GetProposal(ctx context.Context, id uuid.UUID) (*ecochain.GovernanceProposal, error)
	GetActiveProposals(ctx context.Context) ([]*ecochain.GovernanceProposal, error)
	VoteOnProposal(ctx context.Context, id uuid.UUID, voterAddress string, inFavor bool, votingPower decimal.Decimal) error

	CreateTransaction(ctx context.Context, tx *ecochain.Transaction) (*ecochain.Transaction, error)
	GetTransactionByHash(ctx context.Context, hash string) (*ecochain.Transaction, error)
	ListTransactionsByUser(ctx context.Context, address string, limit int) ([]*ecochain.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, hash string, status ecochain.TxStatus, blockNumber *int64) error

	CreateStakingRecord(ctx context.Context, s *ecochain.StakingRecord) (*ecochain.StakingRecord, error)
	GetActiveStakingRecords(ctx context.Context, userAddress string) ([]*ecochain.StakingRecord, error)
	GetStakingRecord(ctx context.Context, id uuid.UUID) (*ecochain.StakingRecord, error)
	UpdateStakingStatus(ctx context.Context, id uuid.UUID, status ecochain.StakingStatus) error

	GetLatestPlatformStats(ctx context.Context) (*ecochain.PlatformStats, error)
	GetUserAnalytics(ctx context.Context, walletAddress string) (*ecochain.UserAnalytics, error)
}

// Service defines the interface for the EcoChain business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	RegisterUser(ctx context.Context, req *ecochain.RegisterUserRequest) (*ecochain.User, error)
	GetProfile(ctx context.Context, walletAddress string) (*ecochain.Profile, error)

	SubmitEcoAction(ctx context.Context, req *ecochain.SubmitEcoActionRequest) (*ecochain.EcoAction, error)
	ListEcoActions(ctx context.Context, walletAddress string, limit int) ([]*ecochain.EcoAction, error)
	VerifyEcoAction(ctx context.Context, id uuid.UUID, transactionHash string) (*ecochain.EcoAction, error)
	RejectEcoAction(ctx context.Context, id uuid.UUID) (*ecochain.EcoAction, error)

	CreateProposal(ctx context.Context, req *ecochain.CreateProposalRequest) (*ecochain.GovernanceProposal, error)
	ListActiveProposals(ctx context.Context) ([]*ecochain.GovernanceProposal, error)
	CastVote(ctx context.Context, id uuid.UUID, req *ecochain.CastVoteRequest) (*ecochain.GovernanceProposal, error)

	SubmitTransaction(ctx context.Context, req *ecochain.SubmitTransactionRequest) (*ecochain.Transaction, error)
	UpdateTransactionStatus(
		ctx context.Context,
		hash string,
		req *ecochain.UpdateTransactionStatusRequest,
	) (*ecochain.Transaction, error)
	ListTransactions(ctx context.Context, walletAddress string, limit int) ([]*ecochain.Transaction, error)

	Stake(ctx context.Context, req *ecochain.StakeRequest) (*ecochain.StakingRecord, error)
	ListActiveStakes(ctx context.Context, walletAddress string) ([]*ecochain.StakingRecord, error)
	WithdrawStake(ctx context.Context, id uuid.UUID) (*ecochain.StakingRecord, error)
	CompleteStake(ctx context.Context, id uuid.UUID) (*ecochain.StakingRecord, error)

	LatestStats(ctx context.Context) (*ecochain.PlatformStats, error)
}

type ecoService struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new EcoChain service
func NewService(store Store, logger *zap.Logger) Service {
	return &ecoService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func validate(req any) error {
	if err := ecochain.Validate(req); err != nil {
		return apperrors.BadRequestError(err, ecochain.ValidationMessage(err))
	}
	return nil
}

// RegisterUser creates a beginner account holding the welcome bonus.
// A wallet that is already registered yields a conflict from the store.
func (s *ecoService) RegisterUser(ctx context.Context, req *ecochain.RegisterUserRequest) (*ecochain.User, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	now := s.now()
	u, err := s.store.CreateUser(ctx, &ecochain.User{
		WalletAddress:   req.WalletAddress,
		Email:           req.Email,
		Username:        req.Username,
		EcoTokenBalance: decimal.NewFromInt(welcomeBonus),
		JoinedAt:        now,
		LastActive:      now,
		Tier:            ecochain.TierBeginner,
		Achievements:    []string{achievementWelcomeBonus},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// GetProfile returns a user with analytics, the latest eco actions and the latest transactions.
func (s *ecoService) GetProfile(ctx context.Context, walletAddress string) (*ecochain.Profile, error) {
	u, err := s.requireUser(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	analytics, err := s.store.GetUserAnalytics(ctx, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to get user analytics: %w", err)
	}

	actions, err := s.store.ListEcoActionsByUser(ctx, walletAddress, profileActionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list eco actions: %w", err)
	}

	txs, err := s.store.ListTransactionsByUser(ctx, walletAddress, profileTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ecochain.Profile{
		User:               u,
		Analytics:          analytics,
		RecentActions:      actions,
		RecentTransactions: txs,
	}, nil
}

// SubmitEcoAction records a pending eco action priced from the reward table.
func (s *ecoService) SubmitEcoAction(
	ctx context.Context,
	req *ecochain.SubmitEcoActionRequest,
) (*ecochain.EcoAction, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	u, err := s.requireUser(ctx, req.WalletAddress)
	if err != nil {
		return nil, err
	}

	r := rewards[req.ActionType]
	a, err := s.store.CreateEcoAction(ctx, &ecochain.EcoAction{
		UserID:             u.ID,
		WalletAddress:      u.WalletAddress,
		ActionType:         req.ActionType,
		Description:        req.Description,
		EcoReward:          r.tokens,
		CarbonOffset:       r.carbonOffset,
		VerificationMethod: verificationMethod,
		AIAnalysis:         req.AIAnalysis,
		Timestamp:          s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create eco action: %w", err)
	}

	metrics.EcoActionsSubmitted.WithLabelValues(string(a.ActionType)).Inc()
	return a, nil
}

// ListEcoActions returns the wallet's eco actions, newest first.
func (s *ecoService) ListEcoActions(
	ctx context.Context,
	walletAddress string,
	limit int,
) ([]*ecochain.EcoAction, error) {
	limit, err := historyLimit(limit, defaultActionHistoryLimit)
	if err != nil {
		return nil, err
	}

	actions, err := s.store.ListEcoActionsByUser(ctx, walletAddress, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list eco actions: %w", err)
	}
	return actions, nil
}

// VerifyEcoAction marks the action verified and credits its owner in one store transaction.
// A failed credit leaves the action pending, so the call can be retried. Retries after success
// with the same hash never pay twice.
func (s *ecoService) VerifyEcoAction(
	ctx context.Context,
	id uuid.UUID,
	transactionHash string,
) (*ecochain.EcoAction, error) {
	changed, err := s.store.VerifyEcoActionAndCredit(ctx, id, transactionHash, decimal.NewFromInt(scorePerCarbonUnit))
	if err != nil {
		return nil, fmt.Errorf("failed to verify eco action: %w", err)
	}

	a, err := s.requireEcoAction(ctx, id)
	if err != nil {
		return nil, err
	}

	if changed {
		s.logger.Info("eco action reward credited",
			zap.String("eco_action_id", id.String()),
			zap.String("wallet_address", a.WalletAddress),
			zap.String("reward", a.EcoReward.String()),
		)
	}

	return a, nil
}

// RejectEcoAction marks a pending action rejected. Rejecting twice is a no-op.
func (s *ecoService) RejectEcoAction(ctx context.Context, id uuid.UUID) (*ecochain.EcoAction, error) {
	if _, err := s.store.RejectEcoAction(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to reject eco action: %w", err)
	}
	return s.requireEcoAction(ctx, id)
}

// CreateProposal opens a proposal for voting from now until its end date.
func (s *ecoService) CreateProposal(
	ctx context.Context,
	req *ecochain.CreateProposalRequest,
) (*ecochain.GovernanceProposal, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	now := s.now()
	var endDate time.Time
	switch {
	case req.EndDate != nil:
		endDate = *req.EndDate
	case req.VotingPeriodDays > 0:
		endDate = now.AddDate(0, 0, req.VotingPeriodDays)
	default:
		endDate = now.AddDate(0, 0, defaultVotingPeriodDays)
	}
	if !endDate.After(now) {
		return nil, apperrors.BadRequestError(nil, "end_date must be in the future")
	}

	p, err := s.store.CreateProposal(ctx, &ecochain.GovernanceProposal{
		Title:           req.Title,
		Description:     req.Description,
		Proposer:        req.Proposer,
		ProposerAddress: req.ProposerAddress,
		Quorum:          req.Quorum,
		StartDate:       now,
		EndDate:         endDate,
		CreatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	return p, nil
}

// ListActiveProposals returns proposals still open for voting, newest first.
func (s *ecoService) ListActiveProposals(ctx context.Context) ([]*ecochain.GovernanceProposal, error) {
	ps, err := s.store.GetActiveProposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active proposals: %w", err)
	}
	return ps, nil
}

// CastVote appends a ballot and returns the proposal with updated tallies.
func (s *ecoService) CastVote(
	ctx context.Context,
	id uuid.UUID,
	req *ecochain.CastVoteRequest,
) (*ecochain.GovernanceProposal, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	// The store rejects ballots for unknown, closed or expired proposals.
	if err := s.store.VoteOnProposal(ctx, id, req.VoterAddress, req.InFavor, req.VotingPower); err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}
	metrics.VotesCast.WithLabelValues(voteDirection(req.InFavor)).Inc()

	p, err := s.store.GetProposal(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	if p == nil {
		return nil, apperrors.ResourceNotFoundError(ErrProposalNotFound, "proposal not found")
	}
	return p, nil
}

// SubmitTransaction records a pending transaction. Re-submitting a hash is a conflict;
// status changes go through UpdateTransactionStatus.
func (s *ecoService) SubmitTransaction(
	ctx context.Context,
	req *ecochain.SubmitTransactionRequest,
) (*ecochain.Transaction, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	tx, err := s.store.CreateTransaction(ctx, &ecochain.Transaction{
		TransactionHash: req.TransactionHash,
		FromAddress:     req.FromAddress,
		ToAddress:       req.ToAddress,
		Amount:          req.Amount,
		Type:            req.Type,
		GasUsed:         req.GasUsed,
		Timestamp:       s.now(),
		Metadata:        req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return tx, nil
}

// UpdateTransactionStatus confirms or fails a pending transaction.
func (s *ecoService) UpdateTransactionStatus(
	ctx context.Context,
	hash string,
	req *ecochain.UpdateTransactionStatusRequest,
) (*ecochain.Transaction, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if err := s.store.UpdateTransactionStatus(ctx, hash, req.Status, req.BlockNumber); err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	tx, err := s.store.GetTransactionByHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if tx == nil {
		return nil, apperrors.ResourceNotFoundError(ErrTransactionNotFound, "transaction not found")
	}
	return tx, nil
}

// ListTransactions returns transactions sent from or to the wallet, newest first.
func (s *ecoService) ListTransactions(
	ctx context.Context,
	walletAddress string,
	limit int,
) ([]*ecochain.Transaction, error) {
	limit, err := historyLimit(limit, defaultTransactionHistoryLimit)
	if err != nil {
		return nil, err
	}

	txs, err := s.store.ListTransactionsByUser(ctx, walletAddress, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// Stake locks tokens for the requested number of days.
func (s *ecoService) Stake(ctx context.Context, req *ecochain.StakeRequest) (*ecochain.StakingRecord, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if _, err := s.requireUser(ctx, req.UserAddress); err != nil {
		return nil, err
	}

	start := s.now()
	rec, err := s.store.CreateStakingRecord(ctx, &ecochain.StakingRecord{
		UserAddress:     req.UserAddress,
		Amount:          req.Amount,
		StakingPeriod:   req.StakingPeriod,
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, req.StakingPeriod),
		TransactionHash: req.TransactionHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create staking record: %w", err)
	}
	return rec, nil
}

// ListActiveStakes returns the wallet's active staking records.
func (s *ecoService) ListActiveStakes(ctx context.Context, walletAddress string) ([]*ecochain.StakingRecord, error) {
	recs, err := s.store.GetActiveStakingRecords(ctx, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to list staking records: %w", err)
	}
	return recs, nil
}

// WithdrawStake ends an active stake early. Withdrawing twice is a no-op.
func (s *ecoService) WithdrawStake(ctx context.Context, id uuid.UUID) (*ecochain.StakingRecord, error) {
	if err := s.store.UpdateStakingStatus(ctx, id, ecochain.StakingWithdrawn); err != nil {
		return nil, fmt.Errorf("failed to withdraw stake: %w", err)
	}
	return s.requireStake(ctx, id)
}

// CompleteStake settles an active stake whose staking period has ended.
func (s *ecoService) CompleteStake(ctx context.Context, id uuid.UUID) (*ecochain.StakingRecord, error) {
	rec, err := s.requireStake(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status == ecochain.StakingActive && s.now().Before(rec.EndDate) {
		return nil, apperrors.ConflictError(ErrStakeNotMatured, "staking period has not ended")
	}

	if err = s.store.UpdateStakingStatus(ctx, id, ecochain.StakingCompleted); err != nil {
		return nil, fmt.Errorf("failed to complete stake: %w", err)
	}
	return s.requireStake(ctx, id)
}

// LatestStats returns the most recent platform stats snapshot.
func (s *ecoService) LatestStats(ctx context.Context) (*ecochain.PlatformStats, error) {
	st, err := s.store.GetLatestPlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform stats: %w", err)
	}
	if st == nil {
		return nil, apperrors.ResourceNotFoundError(ErrStatsNotFound, "platform stats not found")
	}
	return st, nil
}

func (s *ecoService) requireUser(ctx context.Context, walletAddress string) (*ecochain.User, error) {
	u, err := s.store.GetUserByWallet(ctx, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperrors.ResourceNotFoundError(ErrUserNotFound, "user not found")
	}
	return u, nil
}

func (s *ecoService) requireEcoAction(ctx context.Context, id uuid.UUID) (*ecochain.EcoAction, error) {
	a, err := s.store.GetEcoAction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get eco action: %w", err)
	}
	if a == nil {
		return nil, apperrors.ResourceNotFoundError(ErrEcoActionNotFound, "eco action not found")
	}
	return a, nil
}

func (s *ecoService) requireStake(ctx context.Context, id uuid.UUID) (*ecochain.StakingRecord, error) {
	rec, err := s.store.GetStakingRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get staking record: %w", err)
	}
	if rec == nil {
		return nil, apperrors.ResourceNotFoundError(ErrStakeNotFound, "staking record not found")
	}
	return rec, nil
}

// historyLimit resolves a caller-supplied page size; zero selects def.
func historyLimit(limit, def int) (int, error) {
	switch {
	case limit == 0:
		return def, nil
	case limit < 0 || limit > maxHistoryLimit:
		return 0, apperrors.BadRequestError(nil, fmt.Sprintf("limit must be between 1 and %d", maxHistoryLimit))
	default:
		return limit, nil
	}
}

func voteDirection(inFavor bool) string {
	if inFavor {
		return "for"
	}
	return "against"
}
