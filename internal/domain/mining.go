package domain

import "time"

// MiningMode identifies which path executed mining attempts.
type MiningMode string

const (
	ModeSingle     MiningMode = "single"
	ModeContinuous MiningMode = "continuous"
	ModeOffline    MiningMode = "offline"
)

// LootEntry is one row of a mine's drop table. Chance is a percentage in [0, 100].
type LootEntry struct {
	Item   string  `json:"item" jsonschema:"minLength=1"`
	Chance float64 `json:"chance" jsonschema:"minimum=0,maximum=100"`
}

// MineDefinition describes one mine. Loot order is significant: drops are
// reported in table order.
type MineDefinition struct {
	ID            string      `json:"id" jsonschema:"pattern=^[a-z][a-z0-9_]*$"`
	Name          string      `json:"name" jsonschema:"minLength=1"`
	RequiredLevel int         `json:"required_level" jsonschema:"minimum=1"`
	StaminaCost   int         `json:"stamina_cost" jsonschema:"minimum=1"`
	Loot          []LootEntry `json:"loot" jsonschema:"minItems=1"`
}

// MiningState is the per-player mining state.
type MiningState struct {
	Stamina           int       `json:"stamina"`
	MaxStamina        int       `json:"max_stamina"`
	LastStaminaUpdate time.Time `json:"last_stamina_update"`
	LastMiningTime    time.Time `json:"last_mining_time"`

	ContinuousActive    bool      `json:"continuous_active"`
	ContinuousMineID    string    `json:"continuous_mine_id,omitempty"`
	ContinuousStartedAt time.Time `json:"continuous_started_at,omitempty"`

	OfflineEnabled   bool      `json:"offline_enabled"`
	OfflineMineID    string    `json:"offline_mine_id,omitempty"`
	LastOfflineCheck time.Time `json:"last_offline_check"`
}

// StopContinuous clears every continuous-session field. The offline window
// restarts at now, since the session already paid for the time before it.
func (s *MiningState) StopContinuous(now time.Time) {
	s.ContinuousActive = false
	s.ContinuousMineID = ""
	s.ContinuousStartedAt = time.Time{}
	if now.After(s.LastOfflineCheck) {
		s.LastOfflineCheck = now
	}
}

// StopReason explains why a continuous session ended during settlement.
type StopReason string

const (
	StopReasonNone                StopReason = ""
	StopReasonInsufficientStamina StopReason = "insufficient_stamina"
	StopReasonMineUnavailable     StopReason = "mine_unavailable"
	StopReasonManual              StopReason = "manual"
)

// OfflineStatus is the outcome class of an offline settlement.
type OfflineStatus string

const (
	OfflineStatusSettled    OfflineStatus = "settled"
	OfflineStatusDisabled   OfflineStatus = "disabled"
	OfflineStatusTooSoon    OfflineStatus = "too_soon"
	OfflineStatusSuperseded OfflineStatus = "superseded"
)

// MineResult is the outcome of a single manual attempt.
type MineResult struct {
	MineID           string   `json:"mine_id"`
	Drops            []string `json:"drops"`
	StaminaSpent     int      `json:"stamina_spent"`
	StaminaRemaining int      `json:"stamina_remaining"`
	SkippedItems     []string `json:"skipped_items,omitempty"`
}

// ContinuousSettlement is the outcome of settling a continuous session.
type ContinuousSettlement struct {
	MineID           string         `json:"mine_id"`
	Attempts         int            `json:"attempts"`
	ItemsGained      map[string]int `json:"items_gained"`
	StaminaSpent     int            `json:"stamina_spent"`
	StaminaRemaining int            `json:"stamina_remaining"`
	StillMining      bool           `json:"still_mining"`
	StopReason       StopReason     `json:"stop_reason,omitempty"`
	StaminaShortfall int            `json:"stamina_shortfall,omitempty"`
	SkippedItems     []string       `json:"skipped_items,omitempty"`
}

// OfflineSettlement is the outcome of an offline catch-up.
type OfflineSettlement struct {
	Status           OfflineStatus  `json:"status"`
	MineID           string         `json:"mine_id,omitempty"`
	ElapsedSeconds   int64          `json:"elapsed_seconds"`
	Attempts         int            `json:"attempts"`
	ItemsGained      map[string]int `json:"items_gained"`
	StaminaSpent     int            `json:"stamina_spent"`
	StaminaRemaining int            `json:"stamina_remaining"`
	SkippedItems     []string       `json:"skipped_items,omitempty"`
}

// OfflineSettings is a partial update of the offline preferences; nil fields
// are left unchanged.
type OfflineSettings struct {
	Enabled *bool   `json:"enabled,omitempty"`
	MineID  *string `json:"mine_id,omitempty"`
}

// MiningStatus is a snapshot of a player's mining state after reconciliation.
type MiningStatus struct {
	Stamina             int           `json:"stamina"`
	MaxStamina          int           `json:"max_stamina"`
	LastStaminaUpdate   time.Time     `json:"last_stamina_update"`
	MiningLevel         int           `json:"mining_level"`
	AttemptDuration     time.Duration `json:"attempt_duration_ns"`
	ContinuousActive    bool          `json:"continuous_active"`
	ContinuousMineID    string        `json:"continuous_mine_id,omitempty"`
	ContinuousStartedAt *time.Time    `json:"continuous_started_at,omitempty"`
	OfflineEnabled      bool          `json:"offline_enabled"`
	OfflineMineID       string        `json:"offline_mine_id,omitempty"`
	LastOfflineCheck    time.Time     `json:"last_offline_check"`
}
