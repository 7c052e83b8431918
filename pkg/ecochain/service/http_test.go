package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/ecochain/ecochain-api/pkg/app/errors"
	"github.com/ecochain/ecochain-api/pkg/ecochain"
	"github.com/ecochain/ecochain-api/pkg/ecochain/service/mocks"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func newEcoTestServer(svc Service, mutating ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop(), mutating...)
	return r
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestEcoHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newEcoTestServer(svc)

	for _, target := range []string{"/users", "/eco-actions", "/proposals", "/transactions", "/staking"} {
		rec := serve(handler, http.MethodPost, target, "{invalid")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status %d, got %d", target, http.StatusBadRequest, rec.Code)
		}
		got := decodeError(t, rec)
		if got.Error != "invalid JSON" {
			t.Fatalf("%s: expected error %q, got %q", target, "invalid JSON", got.Error)
		}
	}
}

func TestEcoHTTP_RegisterUser_Created(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		RegisterUser(mock.Anything, &ecochain.RegisterUserRequest{WalletAddress: "0xAA", Username: "alice"}).
		Return(&ecochain.User{
			ID:              uuid.New(),
			WalletAddress:   "0xAA",
			Username:        "alice",
			EcoTokenBalance: decimal.NewFromInt(100),
			Tier:            ecochain.TierBeginner,
		}, nil).
		Once()

	handler := newEcoTestServer(svc)
	rec := serve(handler, http.MethodPost, "/users", `{"wallet_address":"0xAA","username":"alice"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}

	var got ecochain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.WalletAddress != "0xAA" || !got.EcoTokenBalance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestEcoHTTP_RegisterUser_Conflict(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		RegisterUser(mock.Anything, mock.Anything).
		Return(nil, apperrors.ConflictError(nil, "wallet address already registered")).
		Once()

	handler := newEcoTestServer(svc)
	rec := serve(handler, http.MethodPost, "/users", `{"wallet_address":"0xAA"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
	got := decodeError(t, rec)
	if got.Error != "wallet address already registered" || got.Code != http.StatusConflict {
		t.Fatalf("unexpected error body: %+v", got)
	}
}

func TestEcoHTTP_GetProfile_NotFound(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		GetProfile(mock.Anything, "0xNOPE").
		Return(nil, apperrors.ResourceNotFoundError(ErrUserNotFound, "user not found")).
		Once()

	handler := newEcoTestServer(svc)
	rec := serve(handler, http.MethodGet, "/users/0xNOPE", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestEcoHTTP_VerifyEcoAction(t *testing.T) {
	id := uuid.New()

	svc := mocks.NewService(t)
	svc.EXPECT().
		VerifyEcoAction(mock.Anything, id, "0xHASH").
		Return(&ecochain.EcoAction{ID: id, Status: ecochain.ActionVerified, TransactionHash: "0xHASH"}, nil).
		Once()

	handler := newEcoTestServer(svc)
	rec := serve(handler, http.MethodPost, "/eco-actions/"+id.String()+"/verify", `{"transaction_hash":"0xHASH"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got ecochain.EcoAction
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Status != ecochain.ActionVerified {
		t.Fatalf("status: got %s want verified", got.Status)
	}
}

func TestEcoHTTP_VerifyEcoAction_BadInput(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newEcoTestServer(svc)

	tests := []struct {
		name    string
		target  string
		body    string
		wantErr string
	}{
		{"malformed id", "/eco-actions/not-a-uuid/verify", `{"transaction_hash":"0xHASH"}`, "invalid id"},
		{"missing hash", "/eco-actions/" + uuid.NewString() + "/verify", `{}`, "transaction_hash is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(handler, http.MethodPost, tc.target, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}
			if got := decodeError(t, rec); got.Error != tc.wantErr {
				t.Fatalf("expected error %q, got %q", tc.wantErr, got.Error)
			}
		})
	}
}

func TestEcoHTTP_CastVote(t *testing.T) {
	id := uuid.New()

	svc := mocks.NewService(t)
	svc.EXPECT().
		CastVote(mock.Anything, id, mock.MatchedBy(func(req *ecochain.CastVoteRequest) bool {
			return req.VoterAddress == "0xBB" && !req.InFavor && req.VotingPower.Equal(decimal.NewFromInt(12))
		})).
		Return(&ecochain.GovernanceProposal{ID: id, VotesAgainst: decimal.NewFromInt(12)}, nil).
		Once()

	handler := newEcoTestServer(svc)
	rec := serve(handler, http.MethodPost, "/proposals/"+id.String()+"/votes",
		`{"voter_address":"0xBB","vote":false,"voting_power":"12"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestEcoHTTP_UpdateTransactionStatus(t *testing.T) {
	block := int64(99)

	svc := mocks.NewService(t)
	svc.EXPECT().
		UpdateTransactionStatus(mock.Anything, "0x01", &ecochain.UpdateTransactionStatusRequest{
			Status:      ecochain.TxConfirmed,
			BlockNumber: &block,
		}).
		Return(&ecochain.Transaction{TransactionHash: "0x01", Status: ecochain.TxConfirmed, BlockNumber: &block}, nil).
		Once()

	handler := newEcoTestServer(svc)
	rec := serve(handler, http.MethodPost, "/transactions/0x01/status", `{"status":"confirmed","block_number":99}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestEcoHTTP_ListHistory_DefaultLimit(t *testing.T) {
	storeMock := mocks.NewStore(t)
	storeMock.EXPECT().
		ListEcoActionsByUser(mock.Anything, "0xAA", 10).
		Return([]*ecochain.EcoAction{{WalletAddress: "0xAA", ActionType: ecochain.ActionRecycling}}, nil).
		Once()
	storeMock.EXPECT().
		ListTransactionsByUser(mock.Anything, "0xAA", 20).
		Return([]*ecochain.Transaction{}, nil).
		Once()

	handler := newEcoTestServer(NewService(storeMock, zap.NewNop()))

	rec := serve(handler, http.MethodGet, "/users/0xAA/eco-actions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("eco actions: expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var actions []ecochain.EcoAction
	if err := json.Unmarshal(rec.Body.Bytes(), &actions); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if len(actions) != 1 || actions[0].ActionType != ecochain.ActionRecycling {
		t.Fatalf("unexpected actions: %+v", actions)
	}

	rec = serve(handler, http.MethodGet, "/users/0xAA/transactions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("transactions: expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if body := bytes.TrimSpace(rec.Body.Bytes()); string(body) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}

func TestEcoHTTP_ListEcoActions_Limit(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ListEcoActions(mock.Anything, "0xAA", 5).Return([]*ecochain.EcoAction{}, nil).Once()

	handler := newEcoTestServer(svc)

	if rec := serve(handler, http.MethodGet, "/users/0xAA/eco-actions?limit=5", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	rec := serve(handler, http.MethodGet, "/users/0xAA/eco-actions?limit=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != "invalid limit" {
		t.Fatalf("expected error %q, got %q", "invalid limit", got.Error)
	}
}

func TestEcoHTTP_WithdrawStake(t *testing.T) {
	id := uuid.New()

	svc := mocks.NewService(t)
	svc.EXPECT().
		WithdrawStake(mock.Anything, id).
		Return(&ecochain.StakingRecord{ID: id, Status: ecochain.StakingWithdrawn}, nil).
		Once()

	handler := newEcoTestServer(svc)
	rec := serve(handler, http.MethodPost, "/staking/"+id.String()+"/withdraw", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestEcoHTTP_CompleteStake_NotMatured(t *testing.T) {
	id := uuid.New()

	svc := mocks.NewService(t)
	svc.EXPECT().
		CompleteStake(mock.Anything, id).
		Return(nil, apperrors.ConflictError(ErrStakeNotMatured, "staking period has not ended")).
		Once()

	handler := newEcoTestServer(svc)
	rec := serve(handler, http.MethodPost, "/staking/"+id.String()+"/complete", "")

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestEcoHTTP_LatestStats_ServiceUnavailable(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		LatestStats(mock.Anything).
		Return(nil, apperrors.DependencyFailureError(nil, "storage unavailable")).
		Once()

	handler := newEcoTestServer(svc)
	rec := serve(handler, http.MethodGet, "/stats", "")

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestEcoHTTP_MiddlewareGuardsMutatingRoutesOnly(t *testing.T) {
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}

	svc := mocks.NewService(t)
	svc.EXPECT().ListActiveProposals(mock.Anything).Return([]*ecochain.GovernanceProposal{}, nil).Once()

	handler := newEcoTestServer(svc, deny)

	if rec := serve(handler, http.MethodPost, "/proposals", `{}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected mutating route to be guarded, got %d", rec.Code)
	}

	rec := serve(handler, http.MethodGet, "/proposals", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected read route to stay open, got %d", rec.Code)
	}
	if body := bytes.TrimSpace(rec.Body.Bytes()); string(body) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}
