package orcamento

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	"github.com/dalmoeng/custos-go/cmd/pkg/logging"
)

const materialCSV = `Descrição;Categoria;Quantidade;Unidade;Valor Unitário;Valor Total
Cimento CP-II 50kg;Estrutura;500;sc;71,00;35.500,00
Areia média lavada;Estrutura;35;m³;125,00;4.375,00
Vergalhão CA-50 10mm;Estrutura;1,2;t;4.500,00;5.400,00
`

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(logging.GetLogger())
}

func TestParseSpreadsheetMaterialCSV(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.ParseSpreadsheet("orcamento.csv", "text/csv", strings.NewReader(materialCSV))
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, result.Items, 3)

	assert.Equal(t, api_models.ContractTypeMaterial, result.ContractType)
	assert.InDelta(t, 45275.0, result.TotalValue, 0.001)
	assert.Empty(t, result.Errors)

	first := result.Items[0]
	assert.Equal(t, "Cimento CP-II 50kg", first.Description)
	assert.Equal(t, "Estrutura", first.Category)
	require.NotNil(t, first.Quantity)
	assert.InDelta(t, 500.0, *first.Quantity, 0.001)
	require.NotNil(t, first.Unit)
	assert.Equal(t, "sc", *first.Unit)
	assert.InDelta(t, 35500.0, first.TotalValue, 0.001)
	assert.NotEmpty(t, first.ID)

	// Brazilian decimal comma in quantity.
	require.NotNil(t, result.Items[2].Quantity)
	assert.InDelta(t, 1.2, *result.Items[2].Quantity, 0.001)
}

func TestParseSpreadsheetServiceCSV(t *testing.T) {
	svc := newTestService(t)

	csv := "Descrição,Categoria,Horas,Valor Hora,Valor Total\n" +
		"Projeto estrutural,Engenharia,120,250,30000\n" +
		"Acompanhamento de obra,Engenharia,80,180,14400\n"

	result, err := svc.ParseSpreadsheet("servicos.csv", "text/csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.Equal(t, api_models.ContractTypeService, result.ContractType)
	assert.InDelta(t, 44400.0, result.TotalValue, 0.001)
	require.NotNil(t, result.Items[0].Hours)
	assert.InDelta(t, 120.0, *result.Items[0].Hours, 0.001)
}

func TestParseSpreadsheetRejectsFileType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ParseSpreadsheet("relatorio.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	require.ErrorIs(t, err, ErrInvalidFileType)

	// Right extension, wrong declared type.
	_, err = svc.ParseSpreadsheet("orcamento.csv", "application/pdf", strings.NewReader(materialCSV))
	require.ErrorIs(t, err, ErrInvalidFileType)
}

func TestParseSpreadsheetGenericContentTypes(t *testing.T) {
	svc := newTestService(t)

	// Multipart writers commonly label any file application/octet-stream.
	result, err := svc.ParseSpreadsheet("orcamento.csv", "application/octet-stream", strings.NewReader(materialCSV))
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, result.Items, 3)

	// Parameterized media types still match on the base type.
	result, err = svc.ParseSpreadsheet("orcamento.csv", "text/csv; charset=utf-8", strings.NewReader(materialCSV))
	require.NoError(t, err)
	require.True(t, result.Success)
}

func TestParseSpreadsheetUnreadableWorkbook(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ParseSpreadsheet("orcamento.xlsx", "", bytes.NewReader([]byte("not a zip archive")))
	require.ErrorIs(t, err, ErrFileRead)
}

func TestParseSpreadsheetPicksBudgetSheet(t *testing.T) {
	svc := newTestService(t)

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Capa")
	_, err := f.NewSheet("Orçamento")
	require.NoError(t, err)

	require.NoError(t, f.SetSheetRow("Capa", "A1", &[]any{"Obra Residencial Alfa"}))
	require.NoError(t, f.SetSheetRow("Orçamento", "A1", &[]any{"Descrição", "Categoria", "Quantidade", "Unidade", "Valor Total"}))
	require.NoError(t, f.SetSheetRow("Orçamento", "A2", &[]any{"Bloco cerâmico", "Alvenaria", 2000, "un", 5600}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	result, err := svc.ParseSpreadsheet("obra.xlsx", "", &buf)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Bloco cerâmico", result.Items[0].Description)
	assert.InDelta(t, 5600.0, result.Items[0].TotalValue, 0.001)
}

func TestParseSpreadsheetFirstMatchingSheetWins(t *testing.T) {
	svc := newTestService(t)

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Orçamento")
	_, err := f.NewSheet("Composição antiga")
	require.NoError(t, err)

	header := []any{"Descrição", "Categoria", "Quantidade", "Unidade", "Valor Total"}
	require.NoError(t, f.SetSheetRow("Orçamento", "A1", &header))
	require.NoError(t, f.SetSheetRow("Orçamento", "A2", &[]any{"Item atual", "Alvenaria", 10, "un", 1000}))
	require.NoError(t, f.SetSheetRow("Composição antiga", "A1", &header))
	require.NoError(t, f.SetSheetRow("Composição antiga", "A2", &[]any{"Item obsoleto", "Alvenaria", 10, "un", 999}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	result, err := svc.ParseSpreadsheet("obra.xlsx", "", &buf)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Item atual", result.Items[0].Description)
}

func TestParseSpreadsheetMissingHeader(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.ParseSpreadsheet("solto.csv", "text/csv", strings.NewReader("a,b,c\n1,2,3\n"))
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cabeçalho")
	assert.Empty(t, result.Items)
}

func TestParseSpreadsheetEmptyWorksheet(t *testing.T) {
	svc := newTestService(t)

	csv := "Descrição,Valor Total\n"
	result, err := svc.ParseSpreadsheet("vazio.csv", "text/csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "vazia")
}

func TestParseSpreadsheetValidationFindings(t *testing.T) {
	svc := newTestService(t)

	csv := "Descrição;Quantidade;Unidade;Valor Total\n" +
		";10;sc;100\n" +
		"Areia;20;m³;0\n" +
		"Brita;15;m³;900\n"

	result, err := svc.ParseSpreadsheet("problemas.csv", "text/csv", strings.NewReader(csv))
	require.NoError(t, err)

	// Validation findings never flip Success.
	assert.True(t, result.Success)
	assert.Contains(t, result.Errors, "Item 1: Descrição é obrigatória")
	assert.Contains(t, result.Errors, "Item 2: Valor total deve ser maior que zero")
	assert.Len(t, result.Items, 3)
}
