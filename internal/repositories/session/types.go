package session

import "github.com/mgpereira/registro/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type ListSessionsInput struct {
}

type ListSessionsOutput struct {
	Sessions []*models.Session
}

type SetActiveSessionInput struct {
	SessionID string
}

type GetActiveSessionInput struct {
}

type ClearActiveSessionInput struct {
}
