package mining

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/IdleMiner_Go/internal/clock"
	"github.com/osse101/IdleMiner_Go/internal/concurrency"
	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/logger"
	"github.com/osse101/IdleMiner_Go/internal/metrics"
	"github.com/osse101/IdleMiner_Go/internal/repository"
)

// Service defines the mining operations exposed to handlers
type Service interface {
	MineOnce(ctx context.Context, playerID, mineID string) (*domain.MineResult, error)
	StartContinuous(ctx context.Context, playerID, mineID string) (*domain.MiningStatus, error)
	StopContinuous(ctx context.Context, playerID string) (*domain.ContinuousSettlement, error)
	SettleContinuous(ctx context.Context, playerID string) (*domain.ContinuousSettlement, error)
	SettleOffline(ctx context.Context, playerID string) (*domain.OfflineSettlement, error)
	ConfigureOffline(ctx context.Context, playerID string, settings domain.OfflineSettings) (*domain.MiningStatus, error)
	GetStatus(ctx context.Context, playerID string) (*domain.MiningStatus, error)
	ListMines(ctx context.Context) []domain.MineDefinition
}

type service struct {
	repo   repository.Player
	engine *Engine
	locks  *concurrency.LockManager
	clock  clock.Clock
}

// NewService creates a mining service. Locks must be shared with every other
// service that writes player records.
func NewService(repo repository.Player, engine *Engine, locks *concurrency.LockManager, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &service{repo: repo, engine: engine, locks: locks, clock: clk}
}

// withPlayer runs fn on a locked, freshly loaded player and persists the
// result when fn succeeds. Nothing is written when fn returns an error.
func (s *service) withPlayer(ctx context.Context, playerID string, fn func(p *domain.Player, now time.Time) error) error {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	if err := fn(p, now); err != nil {
		return err
	}
	p.UpdatedAt = now

	if err := tx.UpdatePlayer(ctx, p); err != nil {
		logger.FromContext(ctx).Error("Failed to persist player", "playerID", playerID, "error", err)
		return fmt.Errorf("failed to update player: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *service) MineOnce(ctx context.Context, playerID, mineID string) (*domain.MineResult, error) {
	var result *domain.MineResult
	err := s.withPlayer(ctx, playerID, func(p *domain.Player, now time.Time) error {
		s.reconcile(ctx, p, now)
		res, err := s.engine.MineOnce(ctx, p, mineID, now)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordMine(result)
	logger.FromContext(ctx).Info("Mined once", "playerID", playerID, "mine", mineID, "drops", len(result.Drops), "stamina", result.StaminaRemaining)
	return result, nil
}

func (s *service) StartContinuous(ctx context.Context, playerID, mineID string) (*domain.MiningStatus, error) {
	var status *domain.MiningStatus
	err := s.withPlayer(ctx, playerID, func(p *domain.Player, now time.Time) error {
		s.reconcile(ctx, p, now)
		if err := s.engine.StartContinuous(p, mineID, now); err != nil {
			return err
		}
		status = s.engine.Status(ctx, p, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Continuous mining started", "playerID", playerID, "mine", mineID)
	return status, nil
}

// StopContinuous settles the running session before ending it so completed
// attempts are not lost.
func (s *service) StopContinuous(ctx context.Context, playerID string) (*domain.ContinuousSettlement, error) {
	var result *domain.ContinuousSettlement
	err := s.withPlayer(ctx, playerID, func(p *domain.Player, now time.Time) error {
		if !p.Mining.ContinuousActive {
			return domain.ErrNotMining
		}
		res, err := s.engine.SettleContinuous(ctx, p, now)
		if err != nil {
			return err
		}
		if s.engine.StopContinuous(p, now) {
			res.StillMining = false
			res.StopReason = domain.StopReasonManual
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordContinuous(result)
	logger.FromContext(ctx).Info("Continuous mining stopped", "playerID", playerID, "reason", result.StopReason, "attempts", result.Attempts)
	return result, nil
}

func (s *service) SettleContinuous(ctx context.Context, playerID string) (*domain.ContinuousSettlement, error) {
	var result *domain.ContinuousSettlement
	err := s.withPlayer(ctx, playerID, func(p *domain.Player, now time.Time) error {
		res, err := s.engine.SettleContinuous(ctx, p, now)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordContinuous(result)
	log := logger.FromContext(ctx)
	if result.StopReason != domain.StopReasonNone {
		log.Warn("Continuous mining auto-stopped", "playerID", playerID, "reason", result.StopReason, "shortfall", result.StaminaShortfall)
	}
	log.Info("Continuous mining settled", "playerID", playerID, "mine", result.MineID, "attempts", result.Attempts, "stamina", result.StaminaRemaining)
	return result, nil
}

func (s *service) SettleOffline(ctx context.Context, playerID string) (*domain.OfflineSettlement, error) {
	var result *domain.OfflineSettlement
	err := s.withPlayer(ctx, playerID, func(p *domain.Player, now time.Time) error {
		res, err := s.engine.SettleOffline(ctx, p, now)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordOffline(result)
	logger.FromContext(ctx).Info("Offline mining settled", "playerID", playerID, "status", result.Status, "attempts", result.Attempts, "elapsed_seconds", result.ElapsedSeconds)
	return result, nil
}

func (s *service) ConfigureOffline(ctx context.Context, playerID string, settings domain.OfflineSettings) (*domain.MiningStatus, error) {
	var status *domain.MiningStatus
	err := s.withPlayer(ctx, playerID, func(p *domain.Player, now time.Time) error {
		if err := s.engine.ConfigureOffline(p, settings); err != nil {
			return err
		}
		status = s.engine.Status(ctx, p, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

// GetStatus reconciles and persists before reporting, so an exhausted
// session is stopped in storage as well as in the response.
func (s *service) GetStatus(ctx context.Context, playerID string) (*domain.MiningStatus, error) {
	var status *domain.MiningStatus
	err := s.withPlayer(ctx, playerID, func(p *domain.Player, now time.Time) error {
		s.reconcile(ctx, p, now)
		status = s.engine.Status(ctx, p, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

func (s *service) ListMines(_ context.Context) []domain.MineDefinition {
	return s.engine.Catalog().ListMines()
}

func (s *service) reconcile(ctx context.Context, p *domain.Player, now time.Time) {
	if reason := s.engine.ValidateState(ctx, p, now); reason != domain.StopReasonNone {
		metrics.RecordStop(reason)
		logger.FromContext(ctx).Warn("Continuous mining stopped during reconcile", "playerID", p.ID, "reason", reason)
	}
}
