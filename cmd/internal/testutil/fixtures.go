package testutil

import (
	"database/sql"
	"time"

	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
)

const (
	// TestPasswordHash is the bcrypt hash for the password "password".
	// Generated with: bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	TestPasswordHash = "$2a$10$j94IoTEXd628/ESukxvscuehNcj11LE80UtkFt3U5FqfNH1dloP.."
	TestPassword     = "password"
)

// Fixtures holds ready-made test data.
type Fixtures struct {
	Users     []db.User
	Contracts []db.Contract
	Items     []db.BudgetItem
	Notas     []db.NotaFiscal
	NfItems   []db.NfItem
}

// CreateTestUser builds a user fixture with the shared test password.
func CreateTestUser(email, role string, isActive bool) db.User {
	now := time.Now()
	return db.User{
		ID:           1,
		Email:        email,
		PasswordHash: TestPasswordHash,
		Role:         role,
		IsActive:     isActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CreateTestContract builds an active contract fixture.
func CreateTestContract(id int64, name, client string, value float64) db.Contract {
	now := time.Now()
	return db.Contract{
		ID:        id,
		Name:      name,
		Client:    client,
		Value:     value,
		Status:    "Em Andamento",
		StartDate: now.AddDate(0, -3, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestBudgetItem builds a material budget item fixture.
func CreateTestBudgetItem(id string, contractID int64, position int32, description string, totalValue float64) db.BudgetItem {
	now := time.Now()
	return db.BudgetItem{
		ID:          id,
		ContractID:  contractID,
		Position:    position,
		Description: description,
		Category:    "Material",
		Quantity:    sql.NullFloat64{Float64: 10, Valid: true},
		Unit:        sql.NullString{String: "un", Valid: true},
		UnitValue:   sql.NullFloat64{Float64: totalValue / 10, Valid: true},
		TotalValue:  totalValue,
		CreatedAt:   now,
	}
}

// CreateTestNotaFiscal builds a pending invoice fixture.
func CreateTestNotaFiscal(id int64, number, supplier string, contractID int64, value float64) db.NotaFiscal {
	now := time.Now()
	return db.NotaFiscal{
		ID:         id,
		Number:     number,
		Series:     "1",
		Supplier:   supplier,
		ContractID: sql.NullInt64{Int64: contractID, Valid: contractID != 0},
		Value:      value,
		IssueDate:  now.AddDate(0, 0, -7),
		Status:     "Pendente",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CreateTestNfItem builds an unlinked invoice line fixture.
func CreateTestNfItem(id, nfID int64, description string, totalValue float64) db.NfItem {
	return db.NfItem{
		ID:          id,
		NfID:        nfID,
		Description: description,
		Quantity:    1,
		UnitValue:   totalValue,
		TotalValue:  totalValue,
	}
}

// DefaultFixtures builds a small consistent data set: two users, two
// contracts with budgets and one pending invoice per contract.
func DefaultFixtures() *Fixtures {
	f := &Fixtures{}

	f.Users = []db.User{
		CreateTestUser("admin@test.com", "admin", true),
		CreateTestUser("engenheiro@test.com", "engineer", true),
	}

	f.Contracts = []db.Contract{
		CreateTestContract(1, "Obra Residencial Alfa", "Construtora Alfa", 500000),
		CreateTestContract(2, "Reforma Galpao Beta", "Logistica Beta", 120000),
	}

	f.Items = []db.BudgetItem{
		CreateTestBudgetItem("itm-001", 1, 0, "Cimento CP-II 50kg", 100000),
		CreateTestBudgetItem("itm-002", 1, 1, "Aco CA-50 10mm", 150000),
		CreateTestBudgetItem("itm-003", 2, 0, "Tinta acrilica branca", 30000),
	}

	f.Notas = []db.NotaFiscal{
		CreateTestNotaFiscal(1, "12345", "Fornecedor Alfa LTDA", 1, 45000),
		CreateTestNotaFiscal(2, "67890", "Fornecedor Beta ME", 2, 8000),
	}

	f.NfItems = []db.NfItem{
		CreateTestNfItem(1, 1, "Cimento CP-II saco 50kg", 45000),
		CreateTestNfItem(2, 2, "Tinta acrilica 18L", 8000),
	}

	return f
}

// Helper functions for pointer fields in request payloads.

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// Float64 returns a pointer to f.
func Float64(f float64) *float64 {
	return &f
}

// Int64 returns a pointer to i.
func Int64(i int64) *int64 {
	return &i
}
