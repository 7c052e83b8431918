package ecostore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/ecochain/ecochain-api/internal/metrics"
	apperrors "github.com/ecochain/ecochain-api/pkg/app/errors"
	"github.com/ecochain/ecochain-api/pkg/ecochain"
)

type pgStore struct {
	db  *bun.DB
	now func() time.Time
}

// NewStore creates a new postgres implementation of the EcoChain store
func NewStore(db *bun.DB, opts ...Option) *pgStore {
	s := &pgStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp returns the store clock at the precision postgres keeps.
func (s *pgStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func observe(op string, start time.Time, err *error) {
	metrics.ObserveStoreOperation(op, start, *err)
}

func affected(res sql.Result) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

func truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// --- users ---

func (s *pgStore) CreateUser(ctx context.Context, u *ecochain.User) (_ *ecochain.User, err error) {
	defer observe("create_user", time.Now(), &err)

	if u == nil {
		return nil, invalidf("user is required")
	}
	rec := *u
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.JoinedAt = truncate(rec.JoinedAt)
	rec.LastActive = truncate(rec.LastActive)
	if err = ecochain.Validate(&rec); err != nil {
		return nil, validationError(err)
	}

	dao := toUserDao(&rec)
	if _, err = s.db.NewInsert().Model(dao).Exec(ctx); err != nil {
		return nil, classify("create user", err)
	}
	return toUser(dao), nil
}

func (s *pgStore) GetUserByWallet(ctx context.Context, walletAddress string) (_ *ecochain.User, err error) {
	defer observe("get_user_by_wallet", time.Now(), &err)
	return s.getUserByWallet(ctx, walletAddress)
}

func (s *pgStore) getUserByWallet(ctx context.Context, walletAddress string) (*ecochain.User, error) {
	dao := new(UserDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("wallet_address = ?", walletAddress).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("get user", err)
	}
	return toUser(dao), nil
}

func (s *pgStore) UpdateUserBalance(ctx context.Context, walletAddress string, balance decimal.Decimal) (err error) {
	defer observe("update_user_balance", time.Now(), &err)

	if balance.IsNegative() {
		return invalidf("eco_token_balance must not be negative")
	}

	res, err := s.db.NewUpdate().
		Model((*UserDao)(nil)).
		Set("eco_token_balance = ?", balance).
		Set("last_active = ?", s.timestamp()).
		Set("total_eco_actions = total_eco_actions + 1").
		Where("wallet_address = ?", walletAddress).
		Exec(ctx)
	if err != nil {
		return classify("update user balance", err)
	}
	if affected(res) == 0 {
		return notFound("user")
	}
	return nil
}

func (s *pgStore) UpdateUserEcoScore(
	ctx context.Context,
	walletAddress string,
	score float64,
	carbonOffsetDelta decimal.Decimal,
) (err error) {
	defer observe("update_user_eco_score", time.Now(), &err)

	if score < 0 || score > 100 {
		return invalidf("eco_score must be between 0 and 100")
	}
	if carbonOffsetDelta.IsNegative() {
		return invalidf("carbon offset delta must not be negative")
	}

	res, err := s.db.NewUpdate().
		Model((*UserDao)(nil)).
		Set("eco_score = ?", score).
		Set("total_carbon_offset = total_carbon_offset + ?", carbonOffsetDelta).
		Where("wallet_address = ?", walletAddress).
		Exec(ctx)
	if err != nil {
		return classify("update user eco score", err)
	}
	if affected(res) == 0 {
		return notFound("user")
	}
	return nil
}

func (s *pgStore) CreditEcoReward(
	ctx context.Context,
	walletAddress string,
	reward decimal.Decimal,
	carbonOffset decimal.Decimal,
	scoreDelta float64,
) (err error) {
	defer observe("credit_eco_reward", time.Now(), &err)

	if reward.IsNegative() || carbonOffset.IsNegative() || scoreDelta < 0 {
		return invalidf("reward, carbon offset and score gain must not be negative")
	}

	return creditUser(ctx, s.db, s.timestamp(), walletAddress, reward, carbonOffset, scoreDelta)
}

// creditUser adds a verified action's reward to its owner. db may be a transaction.
func creditUser(
	ctx context.Context,
	db bun.IDB,
	at time.Time,
	walletAddress string,
	reward decimal.Decimal,
	carbonOffset decimal.Decimal,
	scoreDelta float64,
) error {
	res, err := db.NewUpdate().
		Model((*UserDao)(nil)).
		Set("eco_token_balance = eco_token_balance + ?", reward).
		Set("total_carbon_offset = total_carbon_offset + ?", carbonOffset).
		Set("eco_score = LEAST(eco_score + ?, 100)", scoreDelta).
		Set("total_eco_actions = total_eco_actions + 1").
		Set("last_active = ?", at).
		Where("wallet_address = ?", walletAddress).
		Exec(ctx)
	if err != nil {
		return classify("credit eco reward", err)
	}
	if affected(res) == 0 {
		return notFound("user")
	}
	return nil
}

// --- eco actions ---

func (s *pgStore) CreateEcoAction(ctx context.Context, a *ecochain.EcoAction) (_ *ecochain.EcoAction, err error) {
	defer observe("create_eco_action", time.Now(), &err)

	if a == nil {
		return nil, invalidf("eco action is required")
	}
	rec := *a
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Status == "" {
		rec.Status = ecochain.ActionPending
	}
	if rec.Status != ecochain.ActionPending {
		return nil, invalidf("eco action must be created %s, got %s", ecochain.ActionPending, rec.Status)
	}
	rec.Timestamp = truncate(rec.Timestamp)
	if err = ecochain.Validate(&rec); err != nil {
		return nil, validationError(err)
	}

	dao := toEcoActionDao(&rec)
	if _, err = s.db.NewInsert().Model(dao).Exec(ctx); err != nil {
		return nil, classify("create eco action", err)
	}
	return toEcoAction(dao), nil
}

func (s *pgStore) GetEcoAction(ctx context.Context, id uuid.UUID) (_ *ecochain.EcoAction, err error) {
	defer observe("get_eco_action", time.Now(), &err)
	return s.getEcoAction(ctx, id)
}

func (s *pgStore) getEcoAction(ctx context.Context, id uuid.UUID) (*ecochain.EcoAction, error) {
	dao := new(EcoActionDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("get eco action", err)
	}
	return toEcoAction(dao), nil
}

func (s *pgStore) ListEcoActionsByUser(
	ctx context.Context,
	walletAddress string,
	limit int,
) (_ []*ecochain.EcoAction, err error) {
	defer observe("list_eco_actions_by_user", time.Now(), &err)

	if limit <= 0 {
		limit = DefaultEcoActionLimit
	}

	var daos []EcoActionDao
	err = s.db.NewSelect().
		Model(&daos).
		Where("wallet_address = ?", walletAddress).
		Order("timestamp DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, classify("list eco actions", err)
	}

	actions := make([]*ecochain.EcoAction, len(daos))
	for i := range daos {
		actions[i] = toEcoAction(&daos[i])
	}
	return actions, nil
}

func (s *pgStore) VerifyEcoAction(ctx context.Context, id uuid.UUID, transactionHash string) (_ bool, err error) {
	defer observe("verify_eco_action", time.Now(), &err)

	if transactionHash == "" {
		return false, invalidf("transaction_hash is required")
	}

	res, err := s.db.NewUpdate().
		Model((*EcoActionDao)(nil)).
		Set("status = ?", string(ecochain.ActionVerified)).
		Set("verified_at = ?", s.timestamp()).
		Set("transaction_hash = ?", transactionHash).
		Where("id = ?", id).
		Where("status = ?", string(ecochain.ActionPending)).
		Exec(ctx)
	if err != nil {
		return false, classify("verify eco action", err)
	}
	if affected(res) == 1 {
		return true, nil
	}
	return false, s.settledVerification(ctx, id, transactionHash)
}

func (s *pgStore) VerifyEcoActionAndCredit(
	ctx context.Context,
	id uuid.UUID,
	transactionHash string,
	scorePerCarbonUnit decimal.Decimal,
) (changed bool, err error) {
	defer observe("verify_eco_action_and_credit", time.Now(), &err)

	if transactionHash == "" {
		return false, invalidf("transaction_hash is required")
	}
	if scorePerCarbonUnit.IsNegative() {
		return false, invalidf("score per carbon unit must not be negative")
	}

	at := s.timestamp()
	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var verified []EcoActionDao
		_, err := tx.NewUpdate().
			Model((*EcoActionDao)(nil)).
			Set("status = ?", string(ecochain.ActionVerified)).
			Set("verified_at = ?", at).
			Set("transaction_hash = ?", transactionHash).
			Where("id = ?", id).
			Where("status = ?", string(ecochain.ActionPending)).
			Returning("wallet_address, eco_reward, carbon_offset").
			Exec(ctx, &verified)
		if err != nil {
			return classify("verify eco action", err)
		}
		if len(verified) == 0 {
			return nil
		}

		a := verified[0]
		scoreDelta := a.CarbonOffset.Mul(scorePerCarbonUnit).InexactFloat64()
		if err = creditUser(ctx, tx, at, a.WalletAddress, a.EcoReward, a.CarbonOffset, scoreDelta); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		var svcErr *apperrors.ServiceError
		if !errors.As(err, &svcErr) {
			err = classify("verify and credit eco action", err)
		}
		return false, err
	}
	if changed {
		return true, nil
	}
	return false, s.settledVerification(ctx, id, transactionHash)
}

// settledVerification explains why a verification changed nothing: nil when the action is
// already verified with the same hash, not found or an invalid transition otherwise.
func (s *pgStore) settledVerification(ctx context.Context, id uuid.UUID, transactionHash string) error {
	current, err := s.getEcoAction(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return notFound("eco action")
	}
	if current.Status == ecochain.ActionVerified && current.TransactionHash == transactionHash {
		return nil
	}
	return invalidTransition("eco action", current.Status, ecochain.ActionVerified)
}

func (s *pgStore) RejectEcoAction(ctx context.Context, id uuid.UUID) (_ bool, err error) {
	defer observe("reject_eco_action", time.Now(), &err)

	res, err := s.db.NewUpdate().
		Model((*EcoActionDao)(nil)).
		Set("status = ?", string(ecochain.ActionRejected)).
		Where("id = ?", id).
		Where("status = ?", string(ecochain.ActionPending)).
		Exec(ctx)
	if err != nil {
		return false, classify("reject eco action", err)
	}
	if affected(res) == 1 {
		return true, nil
	}

	current, err := s.getEcoAction(ctx, id)
	if err != nil {
		return false, err
	}
	if current == nil {
		return false, notFound("eco action")
	}
	if current.Status == ecochain.ActionRejected {
		return false, nil
	}
	return false, invalidTransition("eco action", current.Status, ecochain.ActionRejected)
}

// --- governance ---

func (s *pgStore) CreateProposal(
	ctx context.Context,
	p *ecochain.GovernanceProposal,
) (_ *ecochain.GovernanceProposal, err error) {
	defer observe("create_proposal", time.Now(), &err)

	if p == nil {
		return nil, invalidf("proposal is required")
	}
	rec := *p
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Status == "" {
		rec.Status = ecochain.ProposalActive
	}
	if rec.Status != ecochain.ProposalActive {
		return nil, invalidf("proposal must be created %s, got %s", ecochain.ProposalActive, rec.Status)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.timestamp()
	}
	if rec.StartDate.IsZero() {
		rec.StartDate = rec.CreatedAt
	}
	rec.CreatedAt = truncate(rec.CreatedAt)
	rec.StartDate = truncate(rec.StartDate)
	rec.EndDate = truncate(rec.EndDate)
	rec.VotesFor = decimal.Zero
	rec.VotesAgainst = decimal.Zero
	rec.Votes = []ecochain.Vote{}
	if err = ecochain.Validate(&rec); err != nil {
		return nil, validationError(err)
	}

	dao := toProposalDao(&rec)
	if _, err = s.db.NewInsert().Model(dao).Exec(ctx); err != nil {
		return nil, classify("create proposal", err)
	}
	return toProposal(dao), nil
}

func (s *pgStore) GetProposal(ctx context.Context, id uuid.UUID) (_ *ecochain.GovernanceProposal, err error) {
	defer observe("get_proposal", time.Now(), &err)
	return s.getProposal(ctx, id)
}

func (s *pgStore) getProposal(ctx context.Context, id uuid.UUID) (*ecochain.GovernanceProposal, error) {
	dao := new(ProposalDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("get proposal", err)
	}
	return toProposal(dao), nil
}

func (s *pgStore) GetActiveProposals(ctx context.Context) (_ []*ecochain.GovernanceProposal, err error) {
	defer observe("get_active_proposals", time.Now(), &err)

	var daos []ProposalDao
	err = s.db.NewSelect().
		Model(&daos).
		Where("status = ?", string(ecochain.ProposalActive)).
		Where("end_date > ?", s.timestamp()).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, classify("get active proposals", err)
	}

	proposals := make([]*ecochain.GovernanceProposal, len(daos))
	for i := range daos {
		proposals[i] = toProposal(&daos[i])
	}
	return proposals, nil
}

// VoteOnProposal bumps the matching counter and appends the ballot in one UPDATE, so the
// counters always equal the summed voting power of the stored votes.
func (s *pgStore) VoteOnProposal(
	ctx context.Context,
	id uuid.UUID,
	voterAddress string,
	inFavor bool,
	votingPower decimal.Decimal,
) (err error) {
	defer observe("vote_on_proposal", time.Now(), &err)

	if voterAddress == "" {
		return invalidf("voter_address is required")
	}
	if votingPower.IsNegative() {
		return invalidf("voting_power must not be negative")
	}

	now := s.timestamp()
	ballot, err := json.Marshal([]ecochain.Vote{{
		VoterAddress: voterAddress,
		InFavor:      inFavor,
		VotingPower:  votingPower,
		Timestamp:    now,
	}})
	if err != nil {
		return fmt.Errorf("failed to encode vote: %w", err)
	}

	counter := "votes_against"
	if inFavor {
		counter = "votes_for"
	}

	res, err := s.db.NewUpdate().
		Model((*ProposalDao)(nil)).
		Set("? = ? + ?", bun.Ident(counter), bun.Ident(counter), votingPower).
		Set("votes = votes || ?::jsonb", string(ballot)).
		Where("id = ?", id).
		Where("status = ?", string(ecochain.ProposalActive)).
		Where("end_date > ?", now).
		Exec(ctx)
	if err != nil {
		return classify("vote on proposal", err)
	}
	if affected(res) == 1 {
		return nil
	}

	current, err := s.getProposal(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return notFound("proposal")
	}
	msg := fmt.Sprintf("proposal is %s and closed for voting", current.Status)
	if current.Status == ecochain.ProposalActive {
		msg = "proposal voting period has ended"
	}
	return apperrors.ConflictError(fmt.Errorf("%w: %s", ErrInvalidTransition, msg), msg)
}

// --- transactions ---

func (s *pgStore) CreateTransaction(ctx context.Context, tx *ecochain.Transaction) (_ *ecochain.Transaction, err error) {
	defer observe("create_transaction", time.Now(), &err)

	if tx == nil {
		return nil, invalidf("transaction is required")
	}
	rec := *tx
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Status == "" {
		rec.Status = ecochain.TxPending
	}
	if rec.Status != ecochain.TxPending {
		return nil, invalidf("transaction must be created %s, got %s", ecochain.TxPending, rec.Status)
	}
	rec.Timestamp = truncate(rec.Timestamp)
	if err = ecochain.Validate(&rec); err != nil {
		return nil, validationError(err)
	}

	dao := toTransactionDao(&rec)
	if _, err = s.db.NewInsert().Model(dao).Exec(ctx); err != nil {
		return nil, classify("create transaction", err)
	}
	return toTransaction(dao), nil
}

func (s *pgStore) GetTransactionByHash(ctx context.Context, hash string) (_ *ecochain.Transaction, err error) {
	defer observe("get_transaction_by_hash", time.Now(), &err)
	return s.getTransactionByHash(ctx, hash)
}

func (s *pgStore) getTransactionByHash(ctx context.Context, hash string) (*ecochain.Transaction, error) {
	dao := new(TransactionDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("transaction_hash = ?", hash).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("get transaction", err)
	}
	return toTransaction(dao), nil
}

func (s *pgStore) ListTransactionsByUser(
	ctx context.Context,
	address string,
	limit int,
) (_ []*ecochain.Transaction, err error) {
	defer observe("list_transactions_by_user", time.Now(), &err)

	if limit <= 0 {
		limit = DefaultTransactionLimit
	}

	var daos []TransactionDao
	err = s.db.NewSelect().
		Model(&daos).
		Where("from_address = ? OR to_address = ?", address, address).
		Order("timestamp DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, classify("list transactions", err)
	}

	txs := make([]*ecochain.Transaction, len(daos))
	for i := range daos {
		txs[i] = toTransaction(&daos[i])
	}
	return txs, nil
}

func (s *pgStore) UpdateTransactionStatus(
	ctx context.Context,
	hash string,
	status ecochain.TxStatus,
	blockNumber *int64,
) (err error) {
	defer observe("update_transaction_status", time.Now(), &err)

	if !status.IsTerminal() {
		return invalidf("status must be %s or %s, got %q", ecochain.TxConfirmed, ecochain.TxFailed, status)
	}
	if blockNumber != nil && *blockNumber < 0 {
		return invalidf("block_number must not be negative")
	}

	q := s.db.NewUpdate().
		Model((*TransactionDao)(nil)).
		Set("status = ?", string(status))
	if blockNumber != nil {
		q = q.Set("block_number = ?", *blockNumber)
	}
	res, err := q.
		Where("transaction_hash = ?", hash).
		Where("status = ?", string(ecochain.TxPending)).
		Exec(ctx)
	if err != nil {
		return classify("update transaction status", err)
	}
	if affected(res) == 1 {
		return nil
	}

	current, err := s.getTransactionByHash(ctx, hash)
	if err != nil {
		return err
	}
	if current == nil {
		return notFound("transaction")
	}
	if current.Status == status {
		return nil
	}
	return invalidTransition("transaction", current.Status, status)
}

// --- staking ---

func (s *pgStore) CreateStakingRecord(
	ctx context.Context,
	rec *ecochain.StakingRecord,
) (_ *ecochain.StakingRecord, err error) {
	defer observe("create_staking_record", time.Now(), &err)

	if rec == nil {
		return nil, invalidf("staking record is required")
	}
	r := *rec
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = ecochain.StakingActive
	}
	if r.Status != ecochain.StakingActive {
		return nil, invalidf("staking record must be created %s, got %s", ecochain.StakingActive, r.Status)
	}
	r.StartDate = truncate(r.StartDate)
	if r.EndDate.IsZero() {
		r.EndDate = r.StartDate.AddDate(0, 0, r.StakingPeriod)
	}
	r.EndDate = truncate(r.EndDate)
	if err = ecochain.Validate(&r); err != nil {
		return nil, validationError(err)
	}
	if r.EndDate.Before(r.StartDate) {
		return nil, invalidf("end_date must not be before start_date")
	}

	dao := toStakingRecordDao(&r)
	if _, err = s.db.NewInsert().Model(dao).Exec(ctx); err != nil {
		return nil, classify("create staking record", err)
	}
	return toStakingRecord(dao), nil
}

func (s *pgStore) GetActiveStakingRecords(
	ctx context.Context,
	userAddress string,
) (_ []*ecochain.StakingRecord, err error) {
	defer observe("get_active_staking_records", time.Now(), &err)

	var daos []StakingRecordDao
	err = s.db.NewSelect().
		Model(&daos).
		Where("user_address = ?", userAddress).
		Where("status = ?", string(ecochain.StakingActive)).
		Order("start_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, classify("get active staking records", err)
	}

	records := make([]*ecochain.StakingRecord, len(daos))
	for i := range daos {
		records[i] = toStakingRecord(&daos[i])
	}
	return records, nil
}

func (s *pgStore) GetStakingRecord(ctx context.Context, id uuid.UUID) (_ *ecochain.StakingRecord, err error) {
	defer observe("get_staking_record", time.Now(), &err)

	dao := new(StakingRecordDao)
	err = s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("get staking record", err)
	}
	return toStakingRecord(dao), nil
}

func (s *pgStore) UpdateStakingRewards(ctx context.Context, id uuid.UUID, rewardsEarned decimal.Decimal) (err error) {
	defer observe("update_staking_rewards", time.Now(), &err)

	if rewardsEarned.IsNegative() {
		return invalidf("rewards_earned must not be negative")
	}

	res, err := s.db.NewUpdate().
		Model((*StakingRecordDao)(nil)).
		Set("rewards_earned = ?", rewardsEarned).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return classify("update staking rewards", err)
	}
	if affected(res) == 0 {
		return notFound("staking record")
	}
	return nil
}

func (s *pgStore) UpdateStakingStatus(ctx context.Context, id uuid.UUID, status ecochain.StakingStatus) (err error) {
	defer observe("update_staking_status", time.Now(), &err)

	if !status.IsTerminal() {
		return invalidf("status must be %s or %s, got %q", ecochain.StakingCompleted, ecochain.StakingWithdrawn, status)
	}

	res, err := s.db.NewUpdate().
		Model((*StakingRecordDao)(nil)).
		Set("status = ?", string(status)).
		Where("id = ?", id).
		Where("status = ?", string(ecochain.StakingActive)).
		Exec(ctx)
	if err != nil {
		return classify("update staking status", err)
	}
	if affected(res) == 1 {
		return nil
	}

	dao := new(StakingRecordDao)
	err = s.db.NewSelect().
		Model(dao).
		Column("status").
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("staking record")
		}
		return classify("get staking record", err)
	}
	if ecochain.StakingStatus(dao.Status) == status {
		return nil
	}
	return invalidTransition("staking record", dao.Status, status)
}

// --- platform stats ---

// UpsertPlatformStats replaces the row for the snapshot's calendar date or inserts one.
func (s *pgStore) UpsertPlatformStats(
	ctx context.Context,
	stats *ecochain.PlatformStats,
) (_ *ecochain.PlatformStats, err error) {
	defer observe("upsert_platform_stats", time.Now(), &err)

	if stats == nil {
		return nil, invalidf("platform stats are required")
	}
	rec := *stats
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if err = ecochain.Validate(&rec); err != nil {
		return nil, validationError(err)
	}

	dao := toPlatformStatsDao(&rec)
	err = s.db.NewInsert().
		Model(dao).
		On(`CONFLICT ("date") DO UPDATE`).
		Set("total_users = EXCLUDED.total_users").
		Set("active_users = EXCLUDED.active_users").
		Set("total_eco_actions = EXCLUDED.total_eco_actions").
		Set("total_carbon_offset = EXCLUDED.total_carbon_offset").
		Set("eco_tokens_distributed = EXCLUDED.eco_tokens_distributed").
		Set("total_staked = EXCLUDED.total_staked").
		Set("governance_participation = EXCLUDED.governance_participation").
		Set("utility_payments_volume = EXCLUDED.utility_payments_volume").
		Returning("*").
		Scan(ctx)
	if err != nil {
		return nil, classify("upsert platform stats", err)
	}
	return toPlatformStats(dao), nil
}

func (s *pgStore) GetLatestPlatformStats(ctx context.Context) (_ *ecochain.PlatformStats, err error) {
	defer observe("get_latest_platform_stats", time.Now(), &err)

	dao := new(PlatformStatsDao)
	err = s.db.NewSelect().
		Model(dao).
		Order("date DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("get latest platform stats", err)
	}
	return toPlatformStats(dao), nil
}

type actionTypeCount struct {
	ActionType string `bun:"action_type"`
	Count      int64  `bun:"count"`
}

// GetUserAnalytics aggregates a user's eco actions by type and counts the transactions the
// user sent. It returns nil when the wallet has no user record.
func (s *pgStore) GetUserAnalytics(ctx context.Context, walletAddress string) (_ *ecochain.UserAnalytics, err error) {
	defer observe("get_user_analytics", time.Now(), &err)

	u, err := s.getUserByWallet(ctx, walletAddress)
	if err != nil || u == nil {
		return nil, err
	}

	var counts []actionTypeCount
	err = s.db.NewSelect().
		Model((*EcoActionDao)(nil)).
		Column("action_type").
		ColumnExpr("COUNT(*) AS count").
		Where("wallet_address = ?", walletAddress).
		Group("action_type").
		Scan(ctx, &counts)
	if err != nil {
		return nil, classify("count eco actions by type", err)
	}

	txCount, err := s.db.NewSelect().
		Model((*TransactionDao)(nil)).
		Where("from_address = ?", walletAddress).
		Count(ctx)
	if err != nil {
		return nil, classify("count transactions", err)
	}

	analytics := &ecochain.UserAnalytics{
		WalletAddress:     u.WalletAddress,
		EcoTokenBalance:   u.EcoTokenBalance,
		EcoScore:          u.EcoScore,
		TotalCarbonOffset: u.TotalCarbonOffset,
		TransactionsCount: int64(txCount),
		ActionsByType:     make(map[ecochain.ActionType]int64, len(counts)),
	}
	for _, c := range counts {
		analytics.ActionsByType[ecochain.ActionType(c.ActionType)] = c.Count
		analytics.ActionsCount += c.Count
	}
	return analytics, nil
}

// CountPlatformTotals computes the raw figures a platform stats snapshot is built from.
// Offsets and distributed tokens only count verified actions; utility volume only counts
// confirmed payments.
func (s *pgStore) CountPlatformTotals(ctx context.Context, activeSince time.Time) (_ *ecochain.PlatformTotals, err error) {
	defer observe("count_platform_totals", time.Now(), &err)

	totals := &ecochain.PlatformTotals{}

	err = s.db.NewSelect().
		Model((*UserDao)(nil)).
		ColumnExpr("COUNT(*)").
		ColumnExpr("COUNT(*) FILTER (WHERE last_active >= ?)", truncate(activeSince)).
		Scan(ctx, &totals.TotalUsers, &totals.ActiveUsers)
	if err != nil {
		return nil, classify("count users", err)
	}

	err = s.db.NewSelect().
		Model((*EcoActionDao)(nil)).
		ColumnExpr("COUNT(*)").
		ColumnExpr("COALESCE(SUM(carbon_offset) FILTER (WHERE status = ?), 0)", string(ecochain.ActionVerified)).
		ColumnExpr("COALESCE(SUM(eco_reward) FILTER (WHERE status = ?), 0)", string(ecochain.ActionVerified)).
		Scan(ctx, &totals.TotalEcoActions, &totals.TotalCarbonOffset, &totals.EcoTokensDistributed)
	if err != nil {
		return nil, classify("sum eco actions", err)
	}

	err = s.db.NewSelect().
		Model((*StakingRecordDao)(nil)).
		ColumnExpr("COALESCE(SUM(amount), 0)").
		Where("status = ?", string(ecochain.StakingActive)).
		Scan(ctx, &totals.TotalStaked)
	if err != nil {
		return nil, classify("sum staked", err)
	}

	err = s.db.NewSelect().
		TableExpr("governance_proposals AS gp, jsonb_array_elements(gp.votes) AS v").
		ColumnExpr("COUNT(DISTINCT v->>'voter_address')").
		Scan(ctx, &totals.Voters)
	if err != nil {
		return nil, classify("count voters", err)
	}

	err = s.db.NewSelect().
		Model((*TransactionDao)(nil)).
		ColumnExpr("COALESCE(SUM(amount), 0)").
		Where("type = ?", string(ecochain.TxUtilityPayment)).
		Where("status = ?", string(ecochain.TxConfirmed)).
		Scan(ctx, &totals.UtilityPaymentsVolume)
	if err != nil {
		return nil, classify("sum utility payments", err)
	}

	return totals, nil
}
