package handler

import (
	"net/http"

	"github.com/osse101/IdleMiner_Go/internal/logger"
	"github.com/osse101/IdleMiner_Go/internal/player"
)

// RegisterPlayerRequest creates a player
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,username"`
}

// EquipRequest names an inventory item to equip
type EquipRequest struct {
	ItemID int `json:"item_id" validate:"required,min=1"`
}

// UnequipRequest names the slot to clear
type UnequipRequest struct {
	Slot string `json:"slot" validate:"required,equip_slot"`
}

// PlayerHandler handles player, inventory and equipment requests
type PlayerHandler struct {
	svc player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(svc player.Service) *PlayerHandler {
	return &PlayerHandler{svc: svc}
}

// Register creates a new player
// @Summary Register player
// @Tags players
// @Accept json
// @Produce json
// @Param request body RegisterPlayerRequest true "Player"
// @Success 201 {object} domain.PlayerProfile
// @Failure 400 {object} ErrorResponse "Invalid or taken username"
// @Router /api/v1/players [post]
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterPlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
		return
	}

	profile, err := h.svc.Register(r.Context(), req.Username)
	if err != nil {
		respondServiceError(w, r, "Register player", err)
		return
	}
	logger.FromContext(r.Context()).Info("Player registered via API", "playerID", profile.ID)
	respondJSON(w, http.StatusCreated, profile)
}

// Profile returns the player's public profile
// @Summary Player profile
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.PlayerProfile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID} [get]
func (h *PlayerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	profile, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// Inventory returns the resolved inventory
// @Summary Player inventory
// @Tags inventory
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.InventoryView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/inventory [get]
func (h *PlayerHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.GetInventory(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// SortInventory orders the inventory by item
// @Summary Sort inventory
// @Tags inventory
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.InventoryView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/inventory/sort [post]
func (h *PlayerHandler) SortInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.SortInventory(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Sort inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// MergeTempInventory folds overflow items into the main inventory
// @Summary Merge temp inventory
// @Tags inventory
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.InventoryView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/inventory/merge-temp [post]
func (h *PlayerHandler) MergeTempInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.MergeTempInventory(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Merge temp inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Equip equips an inventory item
// @Summary Equip item
// @Tags equipment
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body EquipRequest true "Item"
// @Success 200 {object} domain.PlayerProfile
// @Failure 400 {object} ErrorResponse "Not equippable or level too low"
// @Failure 404 {object} ErrorResponse "Player missing or item not in inventory"
// @Router /api/v1/players/{playerID}/equip [post]
func (h *PlayerHandler) Equip(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req EquipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Equip"); err != nil {
		return
	}

	profile, err := h.svc.Equip(r.Context(), id, req.ItemID)
	if err != nil {
		respondServiceError(w, r, "Equip", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// Unequip clears an equipment slot
// @Summary Unequip slot
// @Tags equipment
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body UnequipRequest true "Slot"
// @Success 200 {object} domain.PlayerProfile
// @Failure 400 {object} ErrorResponse "Invalid or empty slot"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/unequip [post]
func (h *PlayerHandler) Unequip(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var req UnequipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Unequip"); err != nil {
		return
	}

	profile, err := h.svc.Unequip(r.Context(), id, req.Slot)
	if err != nil {
		respondServiceError(w, r, "Unequip", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}
