package dto

import (
	"time"

	"github.com/kicky1/dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the structure for creating a new income record.
type CreateIncomeRequest struct {
	Title    string          `json:"title" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Date     time.Time       `json:"date" binding:"required"`
	Notes    string          `json:"notes"`
}

// UpdateIncomeRequest defines the data allowed for updating an income record.
type UpdateIncomeRequest struct {
	Title    *string          `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Category *string          `json:"category"`
	Date     *time.Time       `json:"date"`
	Notes    *string          `json:"notes"`
}

// ListIncomeParams defines query parameters for listing income records.
type ListIncomeParams struct {
	Category string `form:"category"`
}

// IncomeResponse defines the structure for API responses containing income details.
type IncomeResponse struct {
	IncomeID        string           `json:"incomeID"`
	Title           string           `json:"title"`
	Amount          decimal.Decimal  `json:"amount"`
	Category        string           `json:"category"`
	Date            time.Time        `json:"date"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	LastUpdatedAt   time.Time        `json:"lastUpdatedAt"`
	ConvertedAmount *decimal.Decimal `json:"convertedAmount,omitempty"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:      in.IncomeID,
		Title:         in.Title,
		Amount:        in.Amount,
		Category:      in.Category,
		Date:          in.Date,
		Notes:         in.Notes,
		CreatedAt:     in.CreatedAt,
		LastUpdatedAt: in.LastUpdatedAt,
	}
}

// ToConvertedIncomeResponse converts a display-currency projection of income.
func ToConvertedIncomeResponse(in domain.ConvertedIncome) IncomeResponse {
	resp := ToIncomeResponse(&in.Income)
	converted := in.ConvertedAmount
	resp.ConvertedAmount = &converted
	return resp
}

// ToListIncomeResponse converts a slice of domain.Income to response DTOs.
func ToListIncomeResponse(income []domain.Income) []IncomeResponse {
	responses := make([]IncomeResponse, len(income))
	for i := range income {
		responses[i] = ToIncomeResponse(&income[i])
	}
	return responses
}
