package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"unifarm/internal/http/handler/middleware"
	"unifarm/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Authenticate      = "POST /api/auth/telegram"
	GetAccount        = "GET /api/me"
	GetTransactions   = "GET /api/me/transactions"
	GetReferrals      = "GET /api/me/referrals"
	GetDailyBonus     = "GET /api/daily-bonus"
	ClaimDailyBonus   = "POST /api/daily-bonus/claim"
	ClaimMilestones   = "POST /api/milestones/claim"
	FarmingDeposit    = "POST /api/farming/deposit"
	FarmingHarvest    = "POST /api/farming/harvest"
	DistributeRewards = "POST /internal/farming/distribute"
	Health            = "GET /healthz"
	Metrics           = "GET /metrics"
)

type FarmHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
	bonuses          BonusService
	farming          FarmingService
}

func NewFarmHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	accounts AccountService,
	bonuses BonusService,
	farming FarmingService,
) *FarmHandler {
	return &FarmHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accounts,
		bonuses:          bonuses,
		farming:          farming,
	}
}

func (h *FarmHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.accounts.Authenticate(r.Context(), req.InitData)
	if err != nil {
		h.fail(w, "Login failed", err, Authenticate, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string]string{"token": token},
	}, http.StatusOK, requestId)
}

func (h *FarmHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID, ok := h.userID(w, r, GetAccount)
	if !ok {
		return
	}

	account, err := h.accounts.GetAccount(r.Context(), userID)
	if err != nil {
		h.fail(w, "Could not load account", err, GetAccount, requestId)
		return
	}

	h.respond(w, Response{Data: account}, http.StatusOK, requestId)
}

func (h *FarmHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID, ok := h.userID(w, r, GetTransactions)
	if !ok {
		return
	}

	req, err := payload.ParseTransactionsRequest(r.URL.Query())
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestId)
		return
	}

	transactions, err := h.accounts.Transactions(r.Context(), userID, req.Limit)
	if err != nil {
		h.fail(w, "Could not retrieve transactions", err, GetTransactions, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string]any{"transactions": transactions},
	}, http.StatusOK, requestId)
}

func (h *FarmHandler) HandleGetReferrals(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID, ok := h.userID(w, r, GetReferrals)
	if !ok {
		return
	}

	chain, err := h.accounts.ReferrerChain(r.Context(), userID)
	if err != nil {
		h.fail(w, "Could not resolve referrers", err, GetReferrals, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string]any{"referrers": chain},
	}, http.StatusOK, requestId)
}

func (h *FarmHandler) HandleGetDailyBonus(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID, ok := h.userID(w, r, GetDailyBonus)
	if !ok {
		return
	}

	available, err := h.bonuses.CheckDailyBonusAvailability(r.Context(), userID)
	if err != nil {
		h.fail(w, "Could not check daily bonus", err, GetDailyBonus, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string]bool{"available": available},
	}, http.StatusOK, requestId)
}

func (h *FarmHandler) HandleClaimDailyBonus(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID, ok := h.userID(w, r, ClaimDailyBonus)
	if !ok {
		return
	}

	result, err := h.bonuses.ClaimDailyBonus(r.Context(), userID)
	if err != nil {
		h.fail(w, "Could not claim daily bonus", err, ClaimDailyBonus, requestId)
		return
	}

	message := "Daily bonus claimed"
	if !result.Claimed {
		message = "Daily bonus already claimed today"
	}

	h.logs.Infow("daily bonus claim handled",
		"user_id", userID,
		"claimed", result.Claimed,
		"handler", ClaimDailyBonus,
		"request_id", requestId)

	h.respond(w, Response{Message: message, Data: result}, http.StatusOK, requestId)
}

func (h *FarmHandler) HandleClaimMilestones(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID, ok := h.userID(w, r, ClaimMilestones)
	if !ok {
		return
	}

	result, err := h.bonuses.ProcessMilestoneBonus(r.Context(), userID)
	if err != nil {
		h.fail(w, "Could not process milestones", err, ClaimMilestones, requestId)
		return
	}

	h.respond(w, Response{Data: result}, http.StatusOK, requestId)
}

func (h *FarmHandler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID, ok := h.userID(w, r, FarmingDeposit)
	if !ok {
		return
	}

	var req payload.DepositRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Deposit failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", FarmingDeposit,
			"request_id", requestId)
		return
	}

	state, err := h.farming.Deposit(r.Context(), userID, req.Amount)
	if err != nil {
		h.fail(w, "Deposit failed", err, FarmingDeposit, requestId)
		return
	}

	h.respond(w, Response{Data: state}, http.StatusOK, requestId)
}

func (h *FarmHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())
	userID, ok := h.userID(w, r, FarmingHarvest)
	if !ok {
		return
	}

	result, err := h.farming.Harvest(r.Context(), userID)
	if err != nil {
		h.fail(w, "Harvest failed", err, FarmingHarvest, requestId)
		return
	}

	h.respond(w, Response{Data: result}, http.StatusOK, requestId)
}

// HandleDistribute is called by the farming engine, not by end users.
func (h *FarmHandler) HandleDistribute(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var req payload.DistributeRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Distribution failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", DistributeRewards,
			"request_id", requestId)
		return
	}

	result, err := h.farming.DistributeFarmingRewards(r.Context(), req.UserID, req.Amount, req.HarvestID)
	if err != nil {
		h.fail(w, "Distribution failed", err, DistributeRewards, requestId)
		return
	}

	if failed := result.Failed(); len(failed) > 0 {
		h.logs.Warnw("distribution finished with failed credits",
			"user_id", req.UserID,
			"failed", len(failed),
			"error", result.Err(),
			"handler", DistributeRewards,
			"request_id", requestId)
	}

	h.respond(w, Response{Data: result}, http.StatusOK, requestId)
}

func (h *FarmHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Message: "ok"}, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *FarmHandler) userID(w http.ResponseWriter, r *http.Request, handler string) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if ok {
		return userID, true
	}

	requestId := middleware.RequestIDFromContext(r.Context())
	h.respond(w, Response{
		Message: "Authentication failed",
		Error:   "no authenticated user",
	}, http.StatusUnauthorized,
		requestId)
	h.logs.Errorw("request reached handler without a user",
		"handler", handler,
		"request_id", requestId)
	return 0, false
}

func (h *FarmHandler) fail(w http.ResponseWriter, message string, err error, handler, requestId string) {
	code, detail := statusFor(err)
	h.respond(w, Response{Message: message, Error: detail}, code, requestId)

	if code == http.StatusInternalServerError {
		h.logs.Errorw(message,
			"error", err,
			"handler", handler,
			"request_id", requestId)
		return
	}
	h.logs.Infow(message,
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *FarmHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
