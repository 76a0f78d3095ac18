package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// snapshot is the on-disk record of which session was active
type snapshot struct {
	SessionID string    `json:"session_id"`
	SavedAt   time.Time `json:"saved_at"`
}

// SaveSnapshot writes the active-session identity to a file
func (s *service) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error) {
	if input == nil || input.Path == "" {
		return nil, errors.New("input and path cannot be empty")
	}

	sess, err := s.activeSession(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(&snapshot{
		SessionID: sess.ID,
		SavedAt:   s.clock.Now(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(input.Path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}

	return &SaveSnapshotOutput{
		Path: input.Path,
	}, nil
}

// RestoreSnapshot re-activates the session recorded in a snapshot file.
// A missing file is not an error; the output reports nothing restored.
func (s *service) RestoreSnapshot(ctx context.Context, input *RestoreSnapshotInput) (*RestoreSnapshotOutput, error) {
	if input == nil || input.Path == "" {
		return nil, errors.New("input and path cannot be empty")
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &RestoreSnapshotOutput{Restored: false}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	out, err := s.ActivateSession(ctx, &ActivateSessionInput{
		SessionID: snap.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return &RestoreSnapshotOutput{
		Restored: true,
		Session:  out.Session,
	}, nil
}
