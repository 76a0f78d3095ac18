package reserve

import "github.com/mgpereira/registro/internal/models"

type UpsertReserveInput struct {
	StudentID string
	Date      string
	Dish      string
	Snacks    bool
	Canceled  bool
}

type UpsertReserveOutput struct {
	Reserve *models.Reserve

	// Created indicates a new reserve was inserted rather than updated
	Created bool
}

type GetReserveInput struct {
	ReserveID string
}

type GetActiveReserveInput struct {
	StudentID string
	Date      string
	Snacks    bool
}

type ListReservesByDateInput struct {
	Date string
}

type ListReservesByDateOutput struct {
	Reserves []*models.Reserve
}
