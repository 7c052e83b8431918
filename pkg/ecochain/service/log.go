package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecochain/ecochain-api/pkg/ecochain"
)

const serviceName = "EcoChainService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the EcoChain Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// finish logs the outcome of a method call started at start
func (ls *logService) finish(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)

	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

func (ls *logService) started(method string, fields ...zap.Field) {
	ls.logger.Debug(method+" started", append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
	)...)
}

// RegisterUser wraps the service method with logging
func (ls *logService) RegisterUser(
	ctx context.Context,
	req *ecochain.RegisterUserRequest,
) (resp *ecochain.User, err error) {
	start := time.Now()
	ls.started("RegisterUser", zap.String("wallet_address", req.WalletAddress))

	defer func() {
		ls.finish("RegisterUser", start, err, zap.String("wallet_address", req.WalletAddress))
	}()

	return ls.svc.RegisterUser(ctx, req)
}

// GetProfile wraps the service method with logging
func (ls *logService) GetProfile(ctx context.Context, walletAddress string) (resp *ecochain.Profile, err error) {
	start := time.Now()
	ls.started("GetProfile", zap.String("wallet_address", walletAddress))

	defer func() {
		if err != nil {
			ls.finish("GetProfile", start, err, zap.String("wallet_address", walletAddress))
			return
		}
		ls.finish("GetProfile", start, nil,
			zap.String("wallet_address", walletAddress),
			zap.Int("recent_actions", len(resp.RecentActions)),
			zap.Int("recent_transactions", len(resp.RecentTransactions)),
		)
	}()

	return ls.svc.GetProfile(ctx, walletAddress)
}

// SubmitEcoAction wraps the service method with logging
func (ls *logService) SubmitEcoAction(
	ctx context.Context,
	req *ecochain.SubmitEcoActionRequest,
) (resp *ecochain.EcoAction, err error) {
	start := time.Now()
	ls.started("SubmitEcoAction",
		zap.String("wallet_address", req.WalletAddress),
		zap.String("action_type", string(req.ActionType)),
	)

	defer func() {
		if err != nil {
			ls.finish("SubmitEcoAction", start, err, zap.String("wallet_address", req.WalletAddress))
			return
		}
		ls.finish("SubmitEcoAction", start, nil,
			zap.String("wallet_address", req.WalletAddress),
			zap.String("eco_action_id", resp.ID.String()),
			zap.String("eco_reward", resp.EcoReward.String()),
		)
	}()

	return ls.svc.SubmitEcoAction(ctx, req)
}

// VerifyEcoAction wraps the service method with logging
func (ls *logService) VerifyEcoAction(
	ctx context.Context,
	id uuid.UUID,
	transactionHash string,
) (resp *ecochain.EcoAction, err error) {
	start := time.Now()
	ls.started("VerifyEcoAction",
		zap.String("eco_action_id", id.String()),
		zap.String("transaction_hash", transactionHash),
	)

	defer func() {
		ls.finish("VerifyEcoAction", start, err,
			zap.String("eco_action_id", id.String()),
			zap.String("transaction_hash", transactionHash),
		)
	}()

	return ls.svc.VerifyEcoAction(ctx, id, transactionHash)
}

// RejectEcoAction wraps the service method with logging
func (ls *logService) RejectEcoAction(ctx context.Context, id uuid.UUID) (resp *ecochain.EcoAction, err error) {
	start := time.Now()
	ls.started("RejectEcoAction", zap.String("eco_action_id", id.String()))

	defer func() {
		ls.finish("RejectEcoAction", start, err, zap.String("eco_action_id", id.String()))
	}()

	return ls.svc.RejectEcoAction(ctx, id)
}

// CreateProposal wraps the service method with logging
func (ls *logService) CreateProposal(
	ctx context.Context,
	req *ecochain.CreateProposalRequest,
) (resp *ecochain.GovernanceProposal, err error) {
	start := time.Now()
	ls.started("CreateProposal", zap.String("proposer", req.Proposer))

	defer func() {
		if err != nil {
			ls.finish("CreateProposal", start, err, zap.String("proposer", req.Proposer))
			return
		}
		ls.finish("CreateProposal", start, nil,
			zap.String("proposer", req.Proposer),
			zap.String("proposal_id", resp.ID.String()),
			zap.Time("end_date", resp.EndDate),
		)
	}()

	return ls.svc.CreateProposal(ctx, req)
}

// ListActiveProposals wraps the service method with logging
func (ls *logService) ListActiveProposals(ctx context.Context) (resp []*ecochain.GovernanceProposal, err error) {
	start := time.Now()
	ls.started("ListActiveProposals")

	defer func() {
		ls.finish("ListActiveProposals", start, err, zap.Int("count", len(resp)))
	}()

	return ls.svc.ListActiveProposals(ctx)
}

// CastVote wraps the service method with logging
func (ls *logService) CastVote(
	ctx context.Context,
	id uuid.UUID,
	req *ecochain.CastVoteRequest,
) (resp *ecochain.GovernanceProposal, err error) {
	start := time.Now()
	ls.started("CastVote",
		zap.String("proposal_id", id.String()),
		zap.String("voter_address", req.VoterAddress),
		zap.Bool("in_favor", req.InFavor),
	)

	defer func() {
		ls.finish("CastVote", start, err,
			zap.String("proposal_id", id.String()),
			zap.String("voter_address", req.VoterAddress),
			zap.String("voting_power", req.VotingPower.String()),
		)
	}()

	return ls.svc.CastVote(ctx, id, req)
}

// SubmitTransaction wraps the service method with logging
func (ls *logService) SubmitTransaction(
	ctx context.Context,
	req *ecochain.SubmitTransactionRequest,
) (resp *ecochain.Transaction, err error) {
	start := time.Now()
	ls.started("SubmitTransaction",
		zap.String("transaction_hash", req.TransactionHash),
		zap.String("type", string(req.Type)),
	)

	defer func() {
		ls.finish("SubmitTransaction", start, err,
			zap.String("transaction_hash", req.TransactionHash),
			zap.String("from_address", req.FromAddress),
			zap.String("amount", req.Amount.String()),
		)
	}()

	return ls.svc.SubmitTransaction(ctx, req)
}

// UpdateTransactionStatus wraps the service method with logging
func (ls *logService) UpdateTransactionStatus(
	ctx context.Context,
	hash string,
	req *ecochain.UpdateTransactionStatusRequest,
) (resp *ecochain.Transaction, err error) {
	start := time.Now()
	ls.started("UpdateTransactionStatus",
		zap.String("transaction_hash", hash),
		zap.String("status", string(req.Status)),
	)

	defer func() {
		ls.finish("UpdateTransactionStatus", start, err,
			zap.String("transaction_hash", hash),
			zap.String("status", string(req.Status)),
		)
	}()

	return ls.svc.UpdateTransactionStatus(ctx, hash, req)
}

// Stake wraps the service method with logging
func (ls *logService) Stake(ctx context.Context, req *ecochain.StakeRequest) (resp *ecochain.StakingRecord, err error) {
	start := time.Now()
	ls.started("Stake",
		zap.String("user_address", req.UserAddress),
		zap.String("amount", req.Amount.String()),
		zap.Int("staking_period", req.StakingPeriod),
	)

	defer func() {
		if err != nil {
			ls.finish("Stake", start, err, zap.String("user_address", req.UserAddress))
			return
		}
		ls.finish("Stake", start, nil,
			zap.String("user_address", req.UserAddress),
			zap.String("staking_record_id", resp.ID.String()),
			zap.Time("end_date", resp.EndDate),
		)
	}()

	return ls.svc.Stake(ctx, req)
}

// ListActiveStakes wraps the service method with logging
func (ls *logService) ListActiveStakes(
	ctx context.Context,
	walletAddress string,
) (resp []*ecochain.StakingRecord, err error) {
	start := time.Now()
	ls.started("ListActiveStakes", zap.String("wallet_address", walletAddress))

	defer func() {
		ls.finish("ListActiveStakes", start, err,
			zap.String("wallet_address", walletAddress),
			zap.Int("count", len(resp)),
		)
	}()

	return ls.svc.ListActiveStakes(ctx, walletAddress)
}

// LatestStats wraps the service method with logging
func (ls *logService) LatestStats(ctx context.Context) (resp *ecochain.PlatformStats, err error) {
	start := time.Now()
	ls.started("LatestStats")

	defer func() {
		ls.finish("LatestStats", start, err)
	}()

	return ls.svc.LatestStats(ctx)
}

// ListEcoActions wraps the service method with logging
func (ls *logService) ListEcoActions(
	ctx context.Context,
	walletAddress string,
	limit int,
) (resp []*ecochain.EcoAction, err error) {
	start := time.Now()
	ls.started("ListEcoActions", zap.String("wallet_address", walletAddress), zap.Int("limit", limit))

	defer func() {
		ls.finish("ListEcoActions", start, err,
			zap.String("wallet_address", walletAddress),
			zap.Int("count", len(resp)),
		)
	}()

	return ls.svc.ListEcoActions(ctx, walletAddress, limit)
}

// ListTransactions wraps the service method with logging
func (ls *logService) ListTransactions(
	ctx context.Context,
	walletAddress string,
	limit int,
) (resp []*ecochain.Transaction, err error) {
	start := time.Now()
	ls.started("ListTransactions", zap.String("wallet_address", walletAddress), zap.Int("limit", limit))

	defer func() {
		ls.finish("ListTransactions", start, err,
			zap.String("wallet_address", walletAddress),
			zap.Int("count", len(resp)),
		)
	}()

	return ls.svc.ListTransactions(ctx, walletAddress, limit)
}

// WithdrawStake wraps the service method with logging
func (ls *logService) WithdrawStake(ctx context.Context, id uuid.UUID) (resp *ecochain.StakingRecord, err error) {
	start := time.Now()
	ls.started("WithdrawStake", zap.String("staking_record_id", id.String()))

	defer func() {
		ls.finish("WithdrawStake", start, err, zap.String("staking_record_id", id.String()))
	}()

	return ls.svc.WithdrawStake(ctx, id)
}

// CompleteStake wraps the service method with logging
func (ls *logService) CompleteStake(ctx context.Context, id uuid.UUID) (resp *ecochain.StakingRecord, err error) {
	start := time.Now()
	ls.started("CompleteStake", zap.String("staking_record_id", id.String()))

	defer func() {
		ls.finish("CompleteStake", start, err, zap.String("staking_record_id", id.String()))
	}()

	return ls.svc.CompleteStake(ctx, id)
}
