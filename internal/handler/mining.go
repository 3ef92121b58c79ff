package handler

import (
	"net/http"

	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/logger"
	"github.com/osse101/IdleMiner_Go/internal/mining"
)

// MineRequest names the mine for a single attempt or a continuous session
type MineRequest struct {
	MineID string `json:"mine_id" validate:"required,mine_id"`
}

// OfflineSettingsRequest is a partial update of the offline preferences
type OfflineSettingsRequest struct {
	Enabled *bool   `json:"enabled,omitempty"`
	MineID  *string `json:"mine_id,omitempty" validate:"omitempty,mine_id"`
}

// MinesResponse lists the mine catalog
type MinesResponse struct {
	Mines []domain.MineDefinition `json:"mines"`
}

// MiningHandler handles mining HTTP requests
type MiningHandler struct {
	svc mining.Service
}

// NewMiningHandler creates a new mining handler
func NewMiningHandler(svc mining.Service) *MiningHandler {
	return &MiningHandler{svc: svc}
}

// ListMines returns the mine catalog
// @Summary List mines
// @Tags mining
// @Produce json
// @Success 200 {object} MinesResponse
// @Router /api/v1/mining/mines [get]
func (h *MiningHandler) ListMines(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, MinesResponse{Mines: h.svc.ListMines(r.Context())})
}

// Status reports the player's mining state, stopping a session that can no longer run
// @Summary Mining status
// @Tags mining
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.MiningStatus
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/mining/status [get]
func (h *MiningHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	status, err := h.svc.GetStatus(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Mining status", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// MineOnce performs one mining attempt
// @Summary Mine once
// @Tags mining
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body MineRequest true "Mine"
// @Success 200 {object} domain.MineResult
// @Failure 400 {object} ErrorResponse "Unknown mine, level too low or not enough stamina"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/mining/mine [post]
func (h *MiningHandler) MineOnce(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req MineRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Mine once"); err != nil {
		return
	}

	res, err := h.svc.MineOnce(r.Context(), id, req.MineID)
	if err != nil {
		respondServiceError(w, r, "Mine once", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// StartContinuous starts a continuous mining session
// @Summary Start continuous mining
// @Tags mining
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body MineRequest true "Mine"
// @Success 200 {object} domain.MiningStatus
// @Failure 400 {object} ErrorResponse "Already mining, unknown mine or level too low"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/mining/continuous/start [post]
func (h *MiningHandler) StartContinuous(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req MineRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start continuous mining"); err != nil {
		return
	}

	status, err := h.svc.StartContinuous(r.Context(), id, req.MineID)
	if err != nil {
		respondServiceError(w, r, "Start continuous mining", err)
		return
	}
	logger.FromContext(r.Context()).Info("Continuous mining started via API", "playerID", id, "mine", req.MineID)
	respondJSON(w, http.StatusOK, status)
}

// StopContinuous settles and ends the continuous session
// @Summary Stop continuous mining
// @Tags mining
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.ContinuousSettlement
// @Failure 400 {object} ErrorResponse "Not mining"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/mining/continuous/stop [post]
func (h *MiningHandler) StopContinuous(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.StopContinuous(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Stop continuous mining", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// SettleContinuous credits attempts completed since the last settlement
// @Summary Settle continuous mining
// @Tags mining
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.ContinuousSettlement
// @Failure 400 {object} ErrorResponse "Not mining"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/mining/continuous/settle [post]
func (h *MiningHandler) SettleContinuous(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.SettleContinuous(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Settle continuous mining", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// SettleOffline credits progress made while the player was away
// @Summary Settle offline mining
// @Tags mining
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.OfflineSettlement
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/mining/offline/settle [post]
func (h *MiningHandler) SettleOffline(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.SettleOffline(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Settle offline mining", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// ConfigureOffline updates the offline mining preferences
// @Summary Configure offline mining
// @Tags mining
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body OfflineSettingsRequest true "Settings"
// @Success 200 {object} domain.MiningStatus
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/mining/offline [put]
func (h *MiningHandler) ConfigureOffline(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req OfflineSettingsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Configure offline mining"); err != nil {
		return
	}
	if req.Enabled == nil && req.MineID == nil {
		respondError(w, http.StatusBadRequest, ErrMsgNoOfflineChanges)
		return
	}

	status, err := h.svc.ConfigureOffline(r.Context(), id, domain.OfflineSettings{
		Enabled: req.Enabled,
		MineID:  req.MineID,
	})
	if err != nil {
		respondServiceError(w, r, "Configure offline mining", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}
