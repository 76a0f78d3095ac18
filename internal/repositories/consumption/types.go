package consumption

import "github.com/mgpereira/registro/internal/models"

type CreateConsumptionInput struct {
	Consumption *models.Consumption
}

type GetConsumptionInput struct {
	ConsumptionID string
}

type GetSessionConsumptionInput struct {
	SessionID string
	StudentID string
}

type DeleteConsumptionInput struct {
	ConsumptionID string
}

type ListConsumptionsBySessionInput struct {
	SessionID string
}

type ListConsumptionsBySessionOutput struct {
	Consumptions []*models.Consumption
}
