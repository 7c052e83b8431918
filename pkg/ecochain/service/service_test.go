package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/ecochain/ecochain-api/pkg/app/errors"
	"github.com/ecochain/ecochain-api/pkg/ecochain"
	"github.com/ecochain/ecochain-api/pkg/ecochain/service/mocks"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestService(store Store) *ecoService {
	return &ecoService{
		store:  store,
		logger: zap.NewNop(),
		now:    func() time.Time { return fixedNow },
	}
}

func decEq(want string) func(decimal.Decimal) bool {
	w := decimal.RequireFromString(want)
	return func(got decimal.Decimal) bool { return got.Equal(w) }
}

func TestEcoService_RegisterUser(t *testing.T) {
	ctx := context.Background()

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().
		CreateUser(ctx, mock.MatchedBy(func(u *ecochain.User) bool {
			return u.WalletAddress == "0xAA" &&
				u.EcoTokenBalance.Equal(decimal.NewFromInt(100)) &&
				u.Tier == ecochain.TierBeginner &&
				len(u.Achievements) == 1 && u.Achievements[0] == "welcome_bonus" &&
				u.JoinedAt.Equal(fixedNow) && u.LastActive.Equal(fixedNow)
		})).
		RunAndReturn(func(_ context.Context, u *ecochain.User) (*ecochain.User, error) {
			created := *u
			created.ID = uuid.New()
			return &created, nil
		}).
		Once()

	svc := newTestService(storeMock)

	u, err := svc.RegisterUser(ctx, &ecochain.RegisterUserRequest{WalletAddress: "0xAA", Username: "alice"})
	if err != nil {
		t.Fatalf("RegisterUser() failed: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Fatal("expected created user to carry an id")
	}
	if u.Username != "alice" {
		t.Fatalf("username: got %q want alice", u.Username)
	}
}

func TestEcoService_RegisterUser_InvalidRequest(t *testing.T) {
	storeMock := mocks.NewStore(t)
	svc := newTestService(storeMock)

	_, err := svc.RegisterUser(context.Background(), &ecochain.RegisterUserRequest{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}

func TestEcoService_RegisterUser_AlreadyRegistered(t *testing.T) {
	ctx := context.Background()
	conflict := apperrors.ConflictError(errors.New("duplicate key"), "wallet address already registered")

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().CreateUser(ctx, mock.Anything).Return(nil, conflict).Once()

	svc := newTestService(storeMock)

	_, err := svc.RegisterUser(ctx, &ecochain.RegisterUserRequest{WalletAddress: "0xAA"})
	if !errors.Is(err, conflict) {
		t.Fatalf("expected store conflict to be wrapped, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected CategoryDataConflict, got %v", err)
	}
}

func TestEcoService_GetProfile(t *testing.T) {
	ctx := context.Background()
	user := &ecochain.User{ID: uuid.New(), WalletAddress: "0xAA"}
	analytics := &ecochain.UserAnalytics{WalletAddress: "0xAA", ActionsCount: 2}
	actions := []*ecochain.EcoAction{{ID: uuid.New()}, {ID: uuid.New()}}
	txs := []*ecochain.Transaction{{TransactionHash: "0x01"}}

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetUserByWallet(ctx, "0xAA").Return(user, nil).Once()
	storeMock.EXPECT().GetUserAnalytics(ctx, "0xAA").Return(analytics, nil).Once()
	storeMock.EXPECT().ListEcoActionsByUser(ctx, "0xAA", profileActionLimit).Return(actions, nil).Once()
	storeMock.EXPECT().ListTransactionsByUser(ctx, "0xAA", profileTransactionLimit).Return(txs, nil).Once()

	svc := newTestService(storeMock)

	p, err := svc.GetProfile(ctx, "0xAA")
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if p.User != user || p.Analytics != analytics {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if len(p.RecentActions) != 2 || len(p.RecentTransactions) != 1 {
		t.Fatalf("unexpected activity: %d actions, %d transactions", len(p.RecentActions), len(p.RecentTransactions))
	}
}

func TestEcoService_GetProfile_UnknownUser(t *testing.T) {
	ctx := context.Background()

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetUserByWallet(ctx, "0xNOPE").Return(nil, nil).Once()

	svc := newTestService(storeMock)

	_, err := svc.GetProfile(ctx, "0xNOPE")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
}

func TestEcoService_GetProfile_StoreError(t *testing.T) {
	ctx := context.Background()
	storeErr := apperrors.DependencyFailureError(errors.New("connection refused"), "storage unavailable")

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetUserByWallet(ctx, "0xAA").Return(nil, storeErr).Once()

	svc := newTestService(storeMock)

	_, err := svc.GetProfile(ctx, "0xAA")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to be wrapped, got %v", err)
	}
	if !apperrors.IsRetryable(err) {
		t.Fatalf("expected storage failure to stay retryable, got %v", err)
	}
}

func TestEcoService_SubmitEcoAction_RewardTable(t *testing.T) {
	tests := []struct {
		actionType ecochain.ActionType
		reward     string
		offset     string
	}{
		{ecochain.ActionEnergy, "25", "0.12"},
		{ecochain.ActionWater, "20", "0.08"},
		{ecochain.ActionRecycling, "30", "0.10"},
		{ecochain.ActionTransport, "40", "0.25"},
		{ecochain.ActionPlanting, "50", "0.35"},
	}

	for _, tc := range tests {
		t.Run(string(tc.actionType), func(t *testing.T) {
			ctx := context.Background()
			userID := uuid.New()

			storeMock := mocks.NewStore(t)
			storeMock.EXPECT().
				GetUserByWallet(ctx, "0xAA").
				Return(&ecochain.User{ID: userID, WalletAddress: "0xAA"}, nil).
				Once()
			storeMock.EXPECT().
				CreateEcoAction(ctx, mock.MatchedBy(func(a *ecochain.EcoAction) bool {
					return a.UserID == userID &&
						a.ActionType == tc.actionType &&
						decEq(tc.reward)(a.EcoReward) &&
						decEq(tc.offset)(a.CarbonOffset) &&
						a.VerificationMethod == verificationMethod &&
						a.Timestamp.Equal(fixedNow)
				})).
				RunAndReturn(func(_ context.Context, a *ecochain.EcoAction) (*ecochain.EcoAction, error) {
					created := *a
					created.ID = uuid.New()
					created.Status = ecochain.ActionPending
					return &created, nil
				}).
				Once()

			svc := newTestService(storeMock)

			a, err := svc.SubmitEcoAction(ctx, &ecochain.SubmitEcoActionRequest{
				WalletAddress: "0xAA",
				ActionType:    tc.actionType,
				Description:   "weekly effort",
			})
			if err != nil {
				t.Fatalf("SubmitEcoAction() failed: %v", err)
			}
			if a.Status != ecochain.ActionPending {
				t.Fatalf("status: got %s want pending", a.Status)
			}
		})
	}
}

func TestEcoService_SubmitEcoAction_UnknownType(t *testing.T) {
	storeMock := mocks.NewStore(t)
	svc := newTestService(storeMock)

	_, err := svc.SubmitEcoAction(context.Background(), &ecochain.SubmitEcoActionRequest{
		WalletAddress: "0xAA",
		ActionType:    "composting",
	})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}

func TestEcoService_SubmitEcoAction_UnknownUser(t *testing.T) {
	ctx := context.Background()

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetUserByWallet(ctx, "0xAA").Return(nil, nil).Once()

	svc := newTestService(storeMock)

	_, err := svc.SubmitEcoAction(ctx, &ecochain.SubmitEcoActionRequest{
		WalletAddress: "0xAA",
		ActionType:    ecochain.ActionWater,
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestEcoService_VerifyEcoAction_CreditsOnce(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	action := &ecochain.EcoAction{
		ID:            id,
		WalletAddress: "0xAA",
		ActionType:    ecochain.ActionPlanting,
		EcoReward:     decimal.NewFromInt(50),
		CarbonOffset:  decimal.RequireFromString("0.35"),
		Status:        ecochain.ActionVerified,
	}

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().
		VerifyEcoActionAndCredit(ctx, id, "0xHASH", mock.MatchedBy(decEq("10"))).
		Return(true, nil).
		Once()
	storeMock.EXPECT().
		VerifyEcoActionAndCredit(ctx, id, "0xHASH", mock.MatchedBy(decEq("10"))).
		Return(false, nil).
		Once()
	storeMock.EXPECT().GetEcoAction(ctx, id).Return(action, nil).Twice()

	svc := newTestService(storeMock)

	for i := 0; i < 2; i++ {
		got, err := svc.VerifyEcoAction(ctx, id, "0xHASH")
		if err != nil {
			t.Fatalf("VerifyEcoAction() call %d failed: %v", i+1, err)
		}
		if got.Status != ecochain.ActionVerified {
			t.Fatalf("status: got %s want verified", got.Status)
		}
	}
}

func TestEcoService_VerifyEcoAction_CreditFailureIsRetryable(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	storageErr := apperrors.DependencyFailureError(errors.New("connection reset"), "verify and credit eco action")

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().
		VerifyEcoActionAndCredit(ctx, id, "0xHASH", mock.Anything).
		Return(false, storageErr).
		Once()

	svc := newTestService(storeMock)

	_, err := svc.VerifyEcoAction(ctx, id, "0xHASH")
	if !apperrors.IsRetryable(err) {
		t.Fatalf("expected retryable error, got %v", err)
	}

	// The store kept the action pending, so the retry performs the transition.
	storeMock.EXPECT().
		VerifyEcoActionAndCredit(ctx, id, "0xHASH", mock.Anything).
		Return(true, nil).
		Once()
	storeMock.EXPECT().
		GetEcoAction(ctx, id).
		Return(&ecochain.EcoAction{ID: id, WalletAddress: "0xAA", Status: ecochain.ActionVerified}, nil).
		Once()

	got, err := svc.VerifyEcoAction(ctx, id, "0xHASH")
	if err != nil {
		t.Fatalf("retried VerifyEcoAction() failed: %v", err)
	}
	if got.Status != ecochain.ActionVerified {
		t.Fatalf("status: got %s want verified", got.Status)
	}
}

func TestEcoService_VerifyEcoAction_TransitionRejected(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	conflict := apperrors.ConflictError(errors.New("invalid status transition"), "eco action cannot move from rejected to verified")

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().VerifyEcoActionAndCredit(ctx, id, "0xHASH", mock.Anything).Return(false, conflict).Once()

	svc := newTestService(storeMock)

	_, err := svc.VerifyEcoAction(ctx, id, "0xHASH")
	if !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected CategoryDataConflict, got %v", err)
	}
}

func TestEcoService_ListEcoActions_Limit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: 10},
		{name: "explicit", limit: 3, wantLimit: 3},
		{name: "max", limit: 100, wantLimit: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			storeMock := mocks.NewStore(t)
			storeMock.EXPECT().
				ListEcoActionsByUser(ctx, "0xAA", tc.wantLimit).
				Return([]*ecochain.EcoAction{{WalletAddress: "0xAA"}}, nil).
				Once()

			svc := newTestService(storeMock)

			got, err := svc.ListEcoActions(ctx, "0xAA", tc.limit)
			if err != nil {
				t.Fatalf("ListEcoActions() failed: %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("expected 1 action, got %d", len(got))
			}
		})
	}
}

func TestEcoService_ListHistory_InvalidLimit(t *testing.T) {
	storeMock := mocks.NewStore(t)
	svc := newTestService(storeMock)

	for _, limit := range []int{-1, 101} {
		if _, err := svc.ListEcoActions(context.Background(), "0xAA", limit); !apperrors.Is(err, apperrors.CategoryDataError) {
			t.Fatalf("eco actions limit %d: expected CategoryDataError, got %v", limit, err)
		}
		if _, err := svc.ListTransactions(context.Background(), "0xAA", limit); !apperrors.Is(err, apperrors.CategoryDataError) {
			t.Fatalf("transactions limit %d: expected CategoryDataError, got %v", limit, err)
		}
	}
}

func TestEcoService_ListTransactions_DefaultLimit(t *testing.T) {
	ctx := context.Background()

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().
		ListTransactionsByUser(ctx, "0xAA", 20).
		Return([]*ecochain.Transaction{}, nil).
		Once()

	svc := newTestService(storeMock)

	got, err := svc.ListTransactions(ctx, "0xAA", 0)
	if err != nil {
		t.Fatalf("ListTransactions() failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestEcoService_RejectEcoAction(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().RejectEcoAction(ctx, id).Return(true, nil).Once()
	storeMock.EXPECT().GetEcoAction(ctx, id).Return(&ecochain.EcoAction{ID: id, Status: ecochain.ActionRejected}, nil).Once()

	svc := newTestService(storeMock)

	a, err := svc.RejectEcoAction(ctx, id)
	if err != nil {
		t.Fatalf("RejectEcoAction() failed: %v", err)
	}
	if a.Status != ecochain.ActionRejected {
		t.Fatalf("status: got %s want rejected", a.Status)
	}
}

func TestEcoService_CreateProposal_EndDate(t *testing.T) {
	explicit := fixedNow.Add(48 * time.Hour)

	tests := []struct {
		name string
		req  ecochain.CreateProposalRequest
		want time.Time
	}{
		{"default period", ecochain.CreateProposalRequest{}, fixedNow.AddDate(0, 0, defaultVotingPeriodDays)},
		{"voting period", ecochain.CreateProposalRequest{VotingPeriodDays: 3}, fixedNow.AddDate(0, 0, 3)},
		{"explicit end date", ecochain.CreateProposalRequest{EndDate: &explicit, VotingPeriodDays: 3}, explicit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			req := tc.req
			req.Title = "Raise planting reward"
			req.Proposer = "alice"
			req.Quorum = decimal.NewFromInt(1000)

			storeMock := mocks.NewStore(t)
			storeMock.EXPECT().
				CreateProposal(ctx, mock.MatchedBy(func(p *ecochain.GovernanceProposal) bool {
					return p.StartDate.Equal(fixedNow) && p.CreatedAt.Equal(fixedNow) && p.EndDate.Equal(tc.want)
				})).
				RunAndReturn(func(_ context.Context, p *ecochain.GovernanceProposal) (*ecochain.GovernanceProposal, error) {
					return p, nil
				}).
				Once()

			svc := newTestService(storeMock)

			if _, err := svc.CreateProposal(ctx, &req); err != nil {
				t.Fatalf("CreateProposal() failed: %v", err)
			}
		})
	}
}

func TestEcoService_CreateProposal_EndDateInPast(t *testing.T) {
	past := fixedNow.Add(-time.Hour)

	storeMock := mocks.NewStore(t)
	svc := newTestService(storeMock)

	_, err := svc.CreateProposal(context.Background(), &ecochain.CreateProposalRequest{
		Title:    "Too late",
		Proposer: "alice",
		EndDate:  &past,
	})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}

func TestEcoService_CastVote(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	power := decimal.NewFromInt(40)
	updated := &ecochain.GovernanceProposal{ID: id, VotesFor: power, Status: ecochain.ProposalActive}

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().VoteOnProposal(ctx, id, "0xBB", true, power).Return(nil).Once()
	storeMock.EXPECT().GetProposal(ctx, id).Return(updated, nil).Once()

	svc := newTestService(storeMock)

	p, err := svc.CastVote(ctx, id, &ecochain.CastVoteRequest{VoterAddress: "0xBB", InFavor: true, VotingPower: power})
	if err != nil {
		t.Fatalf("CastVote() failed: %v", err)
	}
	if !p.VotesFor.Equal(power) {
		t.Fatalf("votes_for: got %s want %s", p.VotesFor, power)
	}
}

func TestEcoService_CastVote_StoreErrors(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		category apperrors.Category
	}{
		{"unknown proposal", apperrors.ResourceNotFoundError(nil, "proposal not found"), apperrors.CategoryResourceNotFound},
		{"voting closed", apperrors.ConflictError(nil, "proposal voting period has ended"), apperrors.CategoryDataConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			id := uuid.New()

			storeMock := mocks.NewStore(t)
			storeMock.EXPECT().
				VoteOnProposal(ctx, id, "0xBB", false, mock.Anything).
				Return(tc.storeErr).
				Once()

			svc := newTestService(storeMock)

			_, err := svc.CastVote(ctx, id, &ecochain.CastVoteRequest{VoterAddress: "0xBB", VotingPower: decimal.NewFromInt(1)})
			if !apperrors.Is(err, tc.category) {
				t.Fatalf("expected %s, got %v", tc.category, err)
			}
		})
	}
}

func TestEcoService_SubmitTransaction(t *testing.T) {
	ctx := context.Background()
	gas := int64(21000)

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().
		CreateTransaction(ctx, mock.MatchedBy(func(tx *ecochain.Transaction) bool {
			return tx.TransactionHash == "0x01" && tx.Type == ecochain.TxTransfer &&
				*tx.GasUsed == gas && tx.Timestamp.Equal(fixedNow)
		})).
		RunAndReturn(func(_ context.Context, tx *ecochain.Transaction) (*ecochain.Transaction, error) {
			created := *tx
			created.Status = ecochain.TxPending
			return &created, nil
		}).
		Once()

	svc := newTestService(storeMock)

	tx, err := svc.SubmitTransaction(ctx, &ecochain.SubmitTransactionRequest{
		TransactionHash: "0x01",
		FromAddress:     "0xAA",
		ToAddress:       "0xBB",
		Amount:          decimal.NewFromInt(10),
		Type:            ecochain.TxTransfer,
		GasUsed:         &gas,
	})
	if err != nil {
		t.Fatalf("SubmitTransaction() failed: %v", err)
	}
	if tx.Status != ecochain.TxPending {
		t.Fatalf("status: got %s want pending", tx.Status)
	}
}

func TestEcoService_UpdateTransactionStatus(t *testing.T) {
	ctx := context.Background()
	block := int64(1234)

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().UpdateTransactionStatus(ctx, "0x01", ecochain.TxConfirmed, &block).Return(nil).Once()
	storeMock.EXPECT().
		GetTransactionByHash(ctx, "0x01").
		Return(&ecochain.Transaction{TransactionHash: "0x01", Status: ecochain.TxConfirmed, BlockNumber: &block}, nil).
		Once()

	svc := newTestService(storeMock)

	tx, err := svc.UpdateTransactionStatus(ctx, "0x01", &ecochain.UpdateTransactionStatusRequest{
		Status:      ecochain.TxConfirmed,
		BlockNumber: &block,
	})
	if err != nil {
		t.Fatalf("UpdateTransactionStatus() failed: %v", err)
	}
	if tx.Status != ecochain.TxConfirmed || *tx.BlockNumber != block {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
}

func TestEcoService_UpdateTransactionStatus_BackToPending(t *testing.T) {
	storeMock := mocks.NewStore(t)
	svc := newTestService(storeMock)

	_, err := svc.UpdateTransactionStatus(context.Background(), "0x01", &ecochain.UpdateTransactionStatusRequest{
		Status: ecochain.TxPending,
	})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
}

func TestEcoService_Stake(t *testing.T) {
	ctx := context.Background()

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetUserByWallet(ctx, "0xAA").Return(&ecochain.User{WalletAddress: "0xAA"}, nil).Once()
	storeMock.EXPECT().
		CreateStakingRecord(ctx, mock.MatchedBy(func(r *ecochain.StakingRecord) bool {
			return r.StartDate.Equal(fixedNow) && r.EndDate.Equal(fixedNow.AddDate(0, 0, 30)) && r.StakingPeriod == 30
		})).
		RunAndReturn(func(_ context.Context, r *ecochain.StakingRecord) (*ecochain.StakingRecord, error) {
			created := *r
			created.ID = uuid.New()
			created.Status = ecochain.StakingActive
			return &created, nil
		}).
		Once()

	svc := newTestService(storeMock)

	rec, err := svc.Stake(ctx, &ecochain.StakeRequest{
		UserAddress:   "0xAA",
		Amount:        decimal.NewFromInt(500),
		StakingPeriod: 30,
	})
	if err != nil {
		t.Fatalf("Stake() failed: %v", err)
	}
	if rec.Status != ecochain.StakingActive {
		t.Fatalf("status: got %s want active", rec.Status)
	}
}

func TestEcoService_Stake_InvalidAmount(t *testing.T) {
	storeMock := mocks.NewStore(t)
	svc := newTestService(storeMock)

	for _, amount := range []string{"0", "-5"} {
		_, err := svc.Stake(context.Background(), &ecochain.StakeRequest{
			UserAddress:   "0xAA",
			Amount:        decimal.RequireFromString(amount),
			StakingPeriod: 30,
		})
		if !apperrors.Is(err, apperrors.CategoryDataError) {
			t.Fatalf("amount %s: expected CategoryDataError, got %v", amount, err)
		}
	}
}

func TestEcoService_WithdrawStake(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().UpdateStakingStatus(ctx, id, ecochain.StakingWithdrawn).Return(nil).Once()
	storeMock.EXPECT().
		GetStakingRecord(ctx, id).
		Return(&ecochain.StakingRecord{ID: id, Status: ecochain.StakingWithdrawn}, nil).
		Once()

	svc := newTestService(storeMock)

	rec, err := svc.WithdrawStake(ctx, id)
	if err != nil {
		t.Fatalf("WithdrawStake() failed: %v", err)
	}
	if rec.Status != ecochain.StakingWithdrawn {
		t.Fatalf("status: got %s want withdrawn", rec.Status)
	}
}

func TestEcoService_WithdrawStake_AlreadySettled(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	conflict := apperrors.ConflictError(errors.New("invalid status transition"), "staking record cannot move from completed to withdrawn")

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().UpdateStakingStatus(ctx, id, ecochain.StakingWithdrawn).Return(conflict).Once()

	svc := newTestService(storeMock)

	if _, err := svc.WithdrawStake(ctx, id); !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected CategoryDataConflict, got %v", err)
	}
}

func TestEcoService_CompleteStake(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("before end date", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().
			GetStakingRecord(ctx, id).
			Return(&ecochain.StakingRecord{ID: id, Status: ecochain.StakingActive, EndDate: fixedNow.Add(time.Hour)}, nil).
			Once()

		svc := newTestService(storeMock)

		_, err := svc.CompleteStake(ctx, id)
		if !errors.Is(err, ErrStakeNotMatured) {
			t.Fatalf("expected ErrStakeNotMatured, got %v", err)
		}
		if !apperrors.Is(err, apperrors.CategoryDataConflict) {
			t.Fatalf("expected CategoryDataConflict, got %v", err)
		}
	})

	t.Run("matured", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().
			GetStakingRecord(ctx, id).
			Return(&ecochain.StakingRecord{ID: id, Status: ecochain.StakingActive, EndDate: fixedNow.Add(-time.Hour)}, nil).
			Once()
		storeMock.EXPECT().UpdateStakingStatus(ctx, id, ecochain.StakingCompleted).Return(nil).Once()
		storeMock.EXPECT().
			GetStakingRecord(ctx, id).
			Return(&ecochain.StakingRecord{ID: id, Status: ecochain.StakingCompleted}, nil).
			Once()

		svc := newTestService(storeMock)

		rec, err := svc.CompleteStake(ctx, id)
		if err != nil {
			t.Fatalf("CompleteStake() failed: %v", err)
		}
		if rec.Status != ecochain.StakingCompleted {
			t.Fatalf("status: got %s want completed", rec.Status)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		storeMock := mocks.NewStore(t)
		storeMock.EXPECT().GetStakingRecord(ctx, id).Return(nil, nil).Once()

		svc := newTestService(storeMock)

		_, err := svc.CompleteStake(ctx, id)
		if !errors.Is(err, ErrStakeNotFound) {
			t.Fatalf("expected ErrStakeNotFound, got %v", err)
		}
	})
}

func TestEcoService_LatestStats_NoSnapshot(t *testing.T) {
	ctx := context.Background()

	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().GetLatestPlatformStats(ctx).Return(nil, nil).Once()

	svc := newTestService(storeMock)

	_, err := svc.LatestStats(ctx)
	if !errors.Is(err, ErrStatsNotFound) {
		t.Fatalf("expected ErrStatsNotFound, got %v", err)
	}
}

func TestLogService_PassesThrough(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	wantErr := fmt.Errorf("failed to reject eco action: %w", apperrors.ConflictError(nil, "already verified"))

	svcMock := mocks.NewService(t)
	svcMock.EXPECT().RejectEcoAction(ctx, id).Return(nil, wantErr).Once()
	svcMock.EXPECT().ListActiveProposals(ctx).Return([]*ecochain.GovernanceProposal{{ID: id}}, nil).Once()
	svcMock.EXPECT().ListTransactions(ctx, "0xAA", 0).Return([]*ecochain.Transaction{{TransactionHash: "0x01"}}, nil).Once()

	svc := NewLog(svcMock, zap.NewNop())

	if _, err := svc.RejectEcoAction(ctx, id); !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped error to pass through, got %v", err)
	}
	ps, err := svc.ListActiveProposals(ctx)
	if err != nil {
		t.Fatalf("ListActiveProposals() failed: %v", err)
	}
	if len(ps) != 1 || ps[0].ID != id {
		t.Fatalf("unexpected proposals: %+v", ps)
	}
	txs, err := svc.ListTransactions(ctx, "0xAA", 0)
	if err != nil {
		t.Fatalf("ListTransactions() failed: %v", err)
	}
	if len(txs) != 1 || txs[0].TransactionHash != "0x01" {
		t.Fatalf("unexpected transactions: %+v", txs)
	}
}
