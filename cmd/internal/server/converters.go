package server

import (
	"time"

	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
)

// ContractResponse is the API shape of a contract. Dates travel as plain
// strings so the SPA never needs to deal with SQL null types.
type ContractResponse struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	Client                string  `json:"client"`
	Value                 float64 `json:"value"`
	Spent                 float64 `json:"spent"`
	Progress              float64 `json:"progress"`
	Status                string  `json:"status"`
	StartDate             string  `json:"startDate"`
	EndDate               *string `json:"endDate,omitempty"`
	ContractType          *string `json:"contractType,omitempty"`
	MetaReducaoPercentual float64 `json:"metaReducaoPercentual"`
	HasBudgetImport       bool    `json:"hasBudgetImport"`
	CreatedAt             string  `json:"createdAt"`
	UpdatedAt             string  `json:"updatedAt"`
}

func newContractResponse(contract db.Contract) ContractResponse {
	resp := ContractResponse{
		ID:                    contract.ID,
		Name:                  contract.Name,
		Client:                contract.Client,
		Value:                 contract.Value,
		Spent:                 contract.Spent,
		Progress:              contract.Progress,
		Status:                contract.Status,
		StartDate:             contract.StartDate.Format("2006-01-02"),
		MetaReducaoPercentual: contract.MetaReducaoPercentual,
		HasBudgetImport:       contract.HasBudgetImport,
		CreatedAt:             contract.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             contract.UpdatedAt.Format(time.RFC3339),
	}
	if contract.EndDate.Valid {
		endDate := contract.EndDate.Time.Format("2006-01-02")
		resp.EndDate = &endDate
	}
	if contract.ContractType.Valid {
		contractType := contract.ContractType.String
		resp.ContractType = &contractType
	}
	return resp
}

func newContractResponses(dbContracts []db.Contract) []ContractResponse {
	responses := make([]ContractResponse, 0, len(dbContracts))
	for _, contract := range dbContracts {
		responses = append(responses, newContractResponse(contract))
	}
	return responses
}

// UserResponse is the API shape of a user. The password hash never leaves
// the server.
type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

func newUserResponse(user db.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
