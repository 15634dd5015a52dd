package session

import (
	"context"
	"fmt"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/event"
	"github.com/osse101/GrowRoom_Go/internal/logger"
)

// Autosave persists the state when autosave is enabled and something changed
// since the last save. It reports whether a save happened.
func (s *Session) Autosave(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if !s.state.Settings.AutosaveEnabled || s.rev == s.saved {
		s.mu.Unlock()
		return false, nil
	}
	s.mu.Unlock()

	if _, err := s.save(ctx, false); err != nil {
		return false, err
	}
	return true, nil
}

// ManualSave persists the state unconditionally
func (s *Session) ManualSave(ctx context.Context) (Result, error) {
	logger.FromContext(ctx).Info(LogMsgManualSave)
	state, err := s.save(ctx, true)
	if err != nil {
		return Result{Reason: domain.ReasonInternal, State: s.State(), Err: err}, err
	}
	return Result{Accepted: true, State: state}, nil
}

// save writes a snapshot without holding the lock during I/O. LastSavedAt is
// copied back afterwards; the session stays dirty if it changed meanwhile.
func (s *Session) save(ctx context.Context, manual bool) (domain.GameState, error) {
	s.mu.Lock()
	snapshot := s.state.Clone()
	rev := s.rev
	s.mu.Unlock()

	saved, size, err := s.adapter.Save(ctx, snapshot)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "manual", manual, "error", err)
		return snapshot, fmt.Errorf("save: %w", err)
	}

	s.mu.Lock()
	s.state.LastSavedAt = saved.LastSavedAt
	if rev > s.saved {
		s.saved = rev
	}
	current := s.state.Clone()
	s.mu.Unlock()

	if !manual {
		logger.FromContext(ctx).Debug(LogMsgAutosaved, "bytes", size)
	}
	s.publish(ctx, event.NewGameSavedEvent(event.GameSaved, s.adapter.Key(), size, manual, saved.LastSavedAt))
	return current, nil
}

// Reset deletes the save and starts a new game
func (s *Session) Reset(ctx context.Context) (Result, error) {
	s.mu.Lock()
	fresh, err := s.adapter.Reset(ctx)
	if err != nil {
		s.mu.Unlock()
		return Result{Reason: domain.ReasonInternal, State: s.State(), Err: err}, err
	}
	s.state = fresh
	s.rev, s.saved = 0, 0
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgGameReset, "key", s.adapter.Key())
	s.publish(ctx, event.NewGameSavedEvent(event.GameReset, s.adapter.Key(), 0, true, fresh.CreatedAt))
	return Result{Accepted: true, State: fresh.Clone()}, nil
}
