package orcamento

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	"github.com/dalmoeng/custos-go/cmd/pkg/logging"
)

var (
	// ErrInvalidFileType is returned before any parsing attempt when the
	// upload is not one of the accepted spreadsheet types.
	ErrInvalidFileType = errors.New("tipo de arquivo inválido: envie uma planilha .xlsx, .xls ou .csv")

	// ErrFileRead is returned when the file content cannot be read at all.
	// No partial result accompanies it.
	ErrFileRead = errors.New("erro ao ler o arquivo")
)

// acceptedContentTypes lists the media types a spreadsheet upload may carry.
// application/octet-stream is allowed because many HTTP clients (including
// Go's multipart writer) send it for any file; the extension gate still
// applies.
var acceptedContentTypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel":                                          true,
	"text/csv":                                                          true,
	"application/csv":                                                   true,
	"application/octet-stream":                                          true,
}

var acceptedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// sheetKeywords marks the worksheet holding the client quantity/price
// composition. The first sheet whose normalized name contains one of these
// is parsed; otherwise the first sheet wins.
var sheetKeywords = []string{"orcamento", "qpu", "composicao"}

// Service parses uploaded budget spreadsheets into typed budget items.
// It is a pure transformation: persisting the result is the caller's job.
type Service struct {
	logger *logging.Logger
}

func NewService(logger *logging.Logger) *Service {
	return &Service{logger: logger}
}

// ParseSpreadsheet turns an uploaded spreadsheet into a BudgetImportResult.
//
// The file type is checked before anything is read: a non-spreadsheet upload
// fails with ErrInvalidFileType. Unreadable content fails with ErrFileRead.
// Structural problems inside a readable file (empty worksheet, unusable
// header) are reported as data: Success=false plus a descriptive error
// string. Validation findings never flip Success; callers decide whether to
// block on len(Errors) > 0.
func (s *Service) ParseSpreadsheet(filename, contentType string, r io.Reader) (*api_models.BudgetImportResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !acceptedExtensions[ext] {
		return nil, ErrInvalidFileType
	}
	if contentType != "" {
		mediaType := contentType
		if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
			mediaType = parsed
		}
		if !acceptedContentTypes[strings.ToLower(mediaType)] {
			return nil, ErrInvalidFileType
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileRead, err)
	}

	var rows [][]string
	if ext == ".csv" {
		rows, err = readCSV(data)
	} else {
		rows, err = readWorkbook(data)
	}
	if err != nil {
		s.logger.WithError(err).Warnf("planilha ilegível: %s", filename)
		return nil, fmt.Errorf("%w: %v", ErrFileRead, err)
	}

	items, structuralErr := extractItems(rows)
	if structuralErr != "" {
		return &api_models.BudgetImportResult{
			Success:  false,
			Items:    []api_models.BudgetItem{},
			Errors:   []string{structuralErr},
			Warnings: []string{},
		}, nil
	}

	contractType := DetectContractType(items)
	validationErrors, warnings := ValidateItems(items, contractType)

	// Totals are not filtered by validation outcome.
	var total float64
	for _, item := range items {
		total += item.TotalValue
	}

	return &api_models.BudgetImportResult{
		Success:      true,
		Items:        items,
		ContractType: contractType,
		TotalValue:   total,
		Errors:       validationErrors,
		Warnings:     warnings,
	}, nil
}

// readWorkbook loads an Excel file and returns the rows of the composition
// worksheet.
func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("planilha sem abas")
	}

	sheet := sheets[0]
search:
	for _, name := range sheets {
		normalized := normalize(name)
		for _, keyword := range sheetKeywords {
			if strings.Contains(normalized, keyword) {
				sheet = name
				break search
			}
		}
	}

	return f.GetRows(sheet)
}

// readCSV parses CSV content, accepting both comma and the semicolon
// separator common in Brazilian exports.
func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	if line, _, ok := strings.Cut(string(data), "\n"); ok || line != "" {
		if strings.Count(line, ";") > strings.Count(line, ",") {
			reader.Comma = ';'
		}
	}

	return reader.ReadAll()
}

// columnKeys maps normalized header captions to item fields.
var columnKeys = map[string]string{
	"descricao":       "description",
	"categoria":       "category",
	"centro de custo": "costCenter",
	"quantidade":      "quantity",
	"unidade":         "unit",
	"peso":            "weight",
	"valor unitario":  "unitValue",
	"horas":           "hours",
	"valor hora":      "hourlyRate",
	"tipo de servico": "serviceType",
	"valor total":     "totalValue",
}

// extractItems maps spreadsheet rows to budget items. A non-empty second
// return value is a structural error (missing header, no data rows).
func extractItems(rows [][]string) ([]api_models.BudgetItem, string) {
	headerIdx := -1
	columns := map[int]string{}

	for i, row := range rows {
		if rowIsEmpty(row) {
			continue
		}
		candidate := map[int]string{}
		for col, cell := range row {
			if key, ok := columnKeys[normalize(cell)]; ok {
				candidate[col] = key
			}
		}
		if hasColumn(candidate, "description") && hasColumn(candidate, "totalValue") {
			headerIdx = i
			columns = candidate
			break
		}
	}

	if headerIdx < 0 {
		return nil, "cabeçalho não encontrado: a planilha precisa das colunas Descrição e Valor Total"
	}

	items := []api_models.BudgetItem{}
	for _, row := range rows[headerIdx+1:] {
		if rowIsEmpty(row) {
			continue
		}
		item := api_models.BudgetItem{ID: uuid.NewString()}
		for col, key := range columns {
			if col >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[col])
			if cell == "" {
				continue
			}
			switch key {
			case "description":
				item.Description = cell
			case "category":
				item.Category = cell
			case "costCenter":
				item.CostCenter = &cell
			case "unit":
				item.Unit = &cell
			case "serviceType":
				item.ServiceType = &cell
			case "quantity":
				item.Quantity = parseNumberPtr(cell)
			case "weight":
				item.Weight = parseNumberPtr(cell)
			case "unitValue":
				item.UnitValue = parseNumberPtr(cell)
			case "hours":
				item.Hours = parseNumberPtr(cell)
			case "hourlyRate":
				item.HourlyRate = parseNumberPtr(cell)
			case "totalValue":
				if v := parseNumberPtr(cell); v != nil {
					item.TotalValue = *v
				}
			}
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, "planilha vazia: nenhuma linha de orçamento encontrada"
	}

	return items, ""
}

func hasColumn(columns map[int]string, key string) bool {
	for _, v := range columns {
		if v == key {
			return true
		}
	}
	return false
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
