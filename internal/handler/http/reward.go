package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chraietrayen/PFE/internal/domain/reward"
	"github.com/chraietrayen/PFE/internal/handler/http/response"
)

type RewardHandler interface {
	Grant(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type rewardHandlerImpl struct {
	rewardService reward.RewardService
}

func NewRewardHandler(rewardService reward.RewardService) RewardHandler {
	return &rewardHandlerImpl{rewardService: rewardService}
}

func (h *rewardHandlerImpl) Grant(w http.ResponseWriter, r *http.Request) {
	var req reward.GrantRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.rewardService.Grant(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reward granted", reward.ToRewardResponse(created))
}

func (h *rewardHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	revoked, err := h.rewardService.Revoke(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reward revoked", reward.ToRewardResponse(revoked))
}

func (h *rewardHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	summary, err := h.rewardService.GetMonthlySummary(r.Context(), chi.URLParam(r, "id"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
