package api_models

// ContractType classifies the dominant cost structure of a contract,
// inferred from the shape of its budget items.
type ContractType string

const (
	ContractTypeMaterial ContractType = "material"
	ContractTypeService  ContractType = "service"
)

// BudgetItem is one predicted line of cost in a contract's composition
// ("orçamento previsto"). Material and service fields are both optional at
// the type level; which group is populated follows the contract type.
type BudgetItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	CostCenter  *string `json:"costCenter,omitempty"`
	// Material fields
	Quantity  *float64 `json:"quantity,omitempty"`
	Unit      *string  `json:"unit,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	UnitValue *float64 `json:"unitValue,omitempty"`
	// Service fields
	Hours       *float64 `json:"hours,omitempty"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
	ServiceType *string  `json:"serviceType,omitempty"`
	TotalValue  float64  `json:"totalValue"`
}

// BudgetImportResult is the outcome of parsing a budget spreadsheet.
// Success reports structural parsing only; validation problems land in
// Errors (blocking) and Warnings (non-blocking).
type BudgetImportResult struct {
	Success      bool         `json:"success"`
	Items        []BudgetItem `json:"items"`
	ContractType ContractType `json:"contractType"`
	TotalValue   float64      `json:"totalValue"`
	Errors       []string     `json:"errors"`
	Warnings     []string     `json:"warnings"`
}

// LinkedNF references one invoice line that evidences realized spend for a
// budget item.
type LinkedNF struct {
	NfID     int64   `json:"nfId"`
	NfItemID int64   `json:"nfItemId"`
	Value    float64 `json:"value"`
	Quantity float64 `json:"quantity"`
	Date     string  `json:"date"`
}

// RealizationStatus is the per-item execution state.
type RealizationStatus string

const (
	RealizationNotStarted RealizationStatus = "not_started"
	RealizationInProgress RealizationStatus = "in_progress"
	RealizationCompleted  RealizationStatus = "completed"
	RealizationOverBudget RealizationStatus = "over_budget"
)

// BudgetRealization compares one predicted budget item against the invoice
// lines linked to it. It is a derived view, recomputed on demand.
type BudgetRealization struct {
	BudgetItemID      string            `json:"budgetItemId"`
	Description       string            `json:"description"`
	PredictedValue    float64           `json:"predictedValue"`
	RealizedValue     float64           `json:"realizedValue"`
	PredictedQuantity *float64          `json:"predictedQuantity,omitempty"`
	RealizedQuantity  *float64          `json:"realizedQuantity,omitempty"`
	Variance          float64           `json:"variance"`
	VariancePercent   float64           `json:"variancePercent"`
	Status            RealizationStatus `json:"status"`
	LinkedNFs         []LinkedNF        `json:"linkedNFs"`
}

// AlertType enumerates the execution alert categories.
type AlertType string

const (
	AlertBudgetExceeded  AlertType = "budget_exceeded"
	AlertVarianceHigh    AlertType = "variance_high"
	AlertProgressDelayed AlertType = "progress_delayed"
	AlertMissingNF       AlertType = "missing_nf"
)

// AlertSeverity ranks execution alerts.
type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// ExecutionAlert flags a threshold breach found during reconciliation.
type ExecutionAlert struct {
	ID              string        `json:"id"`
	Type            AlertType     `json:"type"`
	Severity        AlertSeverity `json:"severity"`
	Message         string        `json:"message"`
	BudgetItemID    *string       `json:"budgetItemId,omitempty"`
	SuggestedAction *string       `json:"suggestedAction,omitempty"`
}

// ContractExecution is the full predicted-vs-realized picture of one
// contract. Totals sum the per-item values, not the contract's own
// top-level value/spent, which may be manually entered and diverge.
type ContractExecution struct {
	ContractID          int64               `json:"contractId"`
	TotalPredictedValue float64             `json:"totalPredictedValue"`
	TotalRealizedValue  float64             `json:"totalRealizedValue"`
	PhysicalProgress    float64             `json:"physicalProgress"`
	FinancialProgress   float64             `json:"financialProgress"`
	Items               []BudgetRealization `json:"items"`
	LastUpdate          string              `json:"lastUpdate"`
	Alerts              []ExecutionAlert    `json:"alerts"`
}

// NFItem is one invoice line as exposed by the API.
type NFItem struct {
	ID                   int64    `json:"id"`
	Description          string   `json:"description"`
	Quantity             float64  `json:"quantity"`
	UnitValue            float64  `json:"unitValue"`
	TotalValue           float64  `json:"totalValue"`
	Ncm                  *string  `json:"ncm,omitempty"`
	Unit                 *string  `json:"unit,omitempty"`
	Weight               *float64 `json:"weight,omitempty"`
	BudgetItemID         *string  `json:"budgetItemId,omitempty"`
	CostCenterID         *string  `json:"costCenterId,omitempty"`
	ClassificationScore  *float64 `json:"classificationScore,omitempty"`
	ClassificationSource *string  `json:"classificationSource,omitempty"`
}

// NotaFiscal is an invoice as exposed by the API.
type NotaFiscal struct {
	ID       int64    `json:"id"`
	Number   string   `json:"number"`
	Series   string   `json:"series"`
	Supplier string   `json:"supplier"`
	Contract *int64   `json:"contractId,omitempty"`
	Value    float64  `json:"value"`
	Items    []NFItem `json:"items"`
	Date     string   `json:"date"`
	Status   string   `json:"status"`
	XmlFile  *string  `json:"xmlFile,omitempty"`
	PdfFile  *string  `json:"pdfFile,omitempty"`
}

// NFImportResult reports a batch of imported invoices; per-file failures
// are collected, not fatal.
type NFImportResult struct {
	Success      bool         `json:"success"`
	NotasFiscais []NotaFiscal `json:"notasFiscais"`
	Errors       []string     `json:"errors"`
	Warnings     []string     `json:"warnings"`
}

// NFStats is the invoice volume read model.
type NFStats struct {
	TotalCount int64           `json:"totalCount"`
	TotalValue float64         `json:"totalValue"`
	ByStatus   []NfStatusCount `json:"byStatus"`
	Monthly    []MonthlyNfStat `json:"monthly"`
}

// SimilarityFactors breaks a suggestion's confidence into its components.
type SimilarityFactors struct {
	Description float64 `json:"description"`
	Category    float64 `json:"category"`
	Value       float64 `json:"value"`
}

// NFToBudgetSuggestion proposes linking one invoice line to one budget item.
// Confidence is 0-100.
type NFToBudgetSuggestion struct {
	NfItemID          int64             `json:"nfItemId"`
	BudgetItemID      string            `json:"budgetItemId"`
	ConfidenceScore   float64           `json:"confidenceScore"`
	Reason            string            `json:"reason"`
	SimilarityFactors SimilarityFactors `json:"similarityFactors"`
}

// ContractAttention flags a contract whose spend is eating its balance.
type ContractAttention struct {
	ContractID int64   `json:"contractId"`
	Name       string  `json:"name"`
	SpentRatio float64 `json:"spentRatio"`
}

// MonthlyNfStat is one month of invoice volume for the dashboard chart.
type MonthlyNfStat struct {
	Month string  `json:"month"`
	Count int64   `json:"count"`
	Value float64 `json:"value"`
}

// NfStatusCount is the invoice count for one lifecycle status.
type NfStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardSummary is the home-screen payload: contract KPIs plus invoice
// volume figures.
type DashboardSummary struct {
	Kpis               ContractKPIs        `json:"kpis"`
	AttentionContracts []ContractAttention `json:"attentionContracts"`
	NfTotalCount       int64               `json:"nfTotalCount"`
	NfTotalValue       float64             `json:"nfTotalValue"`
	NfByStatus         []NfStatusCount     `json:"nfByStatus"`
	NfMonthly          []MonthlyNfStat     `json:"nfMonthly"`
}

// ContractKPIs are the aggregate figures shown on the contracts overview.
// ContractBalance is value minus spent across all contracts; SavingsTarget is
// the value-weighted reduction goal in currency, against which TotalSpent can
// be read.
type ContractKPIs struct {
	TotalValue      float64 `json:"totalValue"`
	TotalSpent      float64 `json:"totalSpent"`
	ContractBalance float64 `json:"contractBalance"`
	SavingsTarget   float64 `json:"savingsTarget"`
	AvgProgress     float64 `json:"avgProgress"`
	ActiveContracts int     `json:"activeContracts"`
}
