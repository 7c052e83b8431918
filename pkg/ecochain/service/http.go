package service

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/ecochain/ecochain-api/pkg/app/errors"
	apphttp "github.com/ecochain/ecochain-api/pkg/app/http"
	"github.com/ecochain/ecochain-api/pkg/ecochain"
)

// maxBodySize caps request bodies at 1MB
const maxBodySize = 1 << 20

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the EcoChain endpoints on the given chi router.
// Mutating routes are wrapped with the given middlewares, typically bearer authentication.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger, mutating ...func(http.Handler) http.Handler) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/users/{wallet}", apphttp.HandleError(h.getProfile))
	r.Get("/users/{wallet}/eco-actions", apphttp.HandleError(h.listEcoActions))
	r.Get("/users/{wallet}/transactions", apphttp.HandleError(h.listTransactions))
	r.Get("/proposals", apphttp.HandleError(h.listProposals))
	r.Get("/staking/{wallet}", apphttp.HandleError(h.listStakes))
	r.Get("/stats", apphttp.HandleError(h.latestStats))

	r.Group(func(r chi.Router) {
		r.Use(mutating...)

		r.Post("/users", apphttp.HandleError(h.registerUser))
		r.Post("/eco-actions", apphttp.HandleError(h.submitEcoAction))
		r.Post("/eco-actions/{id}/verify", apphttp.HandleError(h.verifyEcoAction))
		r.Post("/eco-actions/{id}/reject", apphttp.HandleError(h.rejectEcoAction))
		r.Post("/proposals", apphttp.HandleError(h.createProposal))
		r.Post("/proposals/{id}/votes", apphttp.HandleError(h.castVote))
		r.Post("/transactions", apphttp.HandleError(h.submitTransaction))
		r.Post("/transactions/{hash}/status", apphttp.HandleError(h.updateTransactionStatus))
		r.Post("/staking", apphttp.HandleError(h.stake))
		r.Post("/staking/{id}/withdraw", apphttp.HandleError(h.withdrawStake))
		r.Post("/staking/{id}/complete", apphttp.HandleError(h.completeStake))
	})
}

func (h *HTTP) registerUser(w http.ResponseWriter, r *http.Request) error {
	var req ecochain.RegisterUserRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	resp, err := h.service.RegisterUser(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) getProfile(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetProfile(r.Context(), chi.URLParam(r, "wallet"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) submitEcoAction(w http.ResponseWriter, r *http.Request) error {
	var req ecochain.SubmitEcoActionRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	resp, err := h.service.SubmitEcoAction(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) listEcoActions(w http.ResponseWriter, r *http.Request) error {
	limit, err := limitParam(r)
	if err != nil {
		return err
	}

	resp, err := h.service.ListEcoActions(r.Context(), chi.URLParam(r, "wallet"), limit)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) verifyEcoAction(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	var req ecochain.VerifyEcoActionRequest
	if err = decode(r, &req); err != nil {
		return err
	}
	if req.TransactionHash == "" {
		return apperrors.BadRequestError(nil, "transaction_hash is required")
	}

	resp, err := h.service.VerifyEcoAction(r.Context(), id, req.TransactionHash)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) rejectEcoAction(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	resp, err := h.service.RejectEcoAction(r.Context(), id)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) createProposal(w http.ResponseWriter, r *http.Request) error {
	var req ecochain.CreateProposalRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	resp, err := h.service.CreateProposal(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) listProposals(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.ListActiveProposals(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) castVote(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	var req ecochain.CastVoteRequest
	if err = decode(r, &req); err != nil {
		return err
	}

	resp, err := h.service.CastVote(r.Context(), id, &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) submitTransaction(w http.ResponseWriter, r *http.Request) error {
	var req ecochain.SubmitTransactionRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	resp, err := h.service.SubmitTransaction(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) updateTransactionStatus(w http.ResponseWriter, r *http.Request) error {
	var req ecochain.UpdateTransactionStatusRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	resp, err := h.service.UpdateTransactionStatus(r.Context(), chi.URLParam(r, "hash"), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) listTransactions(w http.ResponseWriter, r *http.Request) error {
	limit, err := limitParam(r)
	if err != nil {
		return err
	}

	resp, err := h.service.ListTransactions(r.Context(), chi.URLParam(r, "wallet"), limit)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) stake(w http.ResponseWriter, r *http.Request) error {
	var req ecochain.StakeRequest
	if err := decode(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Stake(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) listStakes(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.ListActiveStakes(r.Context(), chi.URLParam(r, "wallet"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) withdrawStake(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	resp, err := h.service.WithdrawStake(r.Context(), id)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) completeStake(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r)
	if err != nil {
		return err
	}

	resp, err := h.service.CompleteStake(r.Context(), id)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) latestStats(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.LatestStats(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// decode reads a JSON request body into v
func decode(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err = json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}

func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperrors.BadRequestError(err, "invalid id")
	}
	return id, nil
}

// limitParam reads the optional ?limit= query parameter; absent means 0.
func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.BadRequestError(err, "invalid limit")
	}
	return limit, nil
}
