package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dalmoeng/custos-go/cmd/internal/services/nf"
	"github.com/dalmoeng/custos-go/cmd/internal/util"
)

// importNfXMLHandler handles POST /api/v1/nf/import.
// Accepts a single NF-e XML file and persists the invoice with its lines.
func (s *Server) importNfXMLHandler(c *gin.Context) {
	sourceFile, sourceHeader, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("arquivo 'file' não fornecido")))
		return
	}
	defer sourceFile.Close()

	contractID, ok := optionalContractID(c)
	if !ok {
		return
	}

	notaFiscal, err := s.nfService.ImportXML(c.Request.Context(), sourceHeader.Filename, sourceFile, contractID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notaFiscal)
}

// importNfBatchHandler handles POST /api/v1/nf/import/batch.
// Accepts a ZIP of NF-e XMLs; per-file failures are reported, not fatal.
func (s *Server) importNfBatchHandler(c *gin.Context) {
	sourceFile, sourceHeader, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("arquivo 'file' não fornecido")))
		return
	}
	defer sourceFile.Close()

	contractID, ok := optionalContractID(c)
	if !ok {
		return
	}

	result, err := s.nfService.ImportBatch(c.Request.Context(), sourceHeader.Filename, sourceFile, contractID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ingestNotaFiscalHandler handles POST /internal/worker/notas-fiscais.
// The OCR worker posts invoices extracted from uploaded PDFs. Same
// validation path as the user-facing create.
func (s *Server) ingestNotaFiscalHandler(c *gin.Context) {
	var req struct {
		createNotaFiscalRequest
		PdfFile *string `json:"pdfFile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	issueDate := util.ParseDate(req.IssueDate)
	if !issueDate.Valid {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("data de emissão inválida: %s", req.IssueDate)))
		return
	}

	params := nf.CreateParams{
		Number:     req.Number,
		Series:     req.Series,
		Supplier:   req.Supplier,
		ContractID: req.ContractID,
		Value:      req.Value,
		IssueDate:  issueDate.Time,
		PdfFile:    req.PdfFile,
	}
	for _, item := range req.Items {
		params.Items = append(params.Items, nf.ItemParams{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitValue:   item.UnitValue,
			TotalValue:  item.TotalValue,
			Ncm:         item.Ncm,
			Unit:        item.Unit,
			Weight:      item.Weight,
		})
	}

	notaFiscal, err := s.nfService.Create(c.Request.Context(), params)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	s.logger.Infof("NF %s importada pelo worker OCR", notaFiscal.Number)
	c.JSON(http.StatusCreated, notaFiscal)
}

// optionalContractID reads the contract_id form field when present. On a
// malformed value it writes the error response and returns ok=false.
func optionalContractID(c *gin.Context) (*int64, bool) {
	raw := c.PostForm("contract_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("formato de contract_id inválido")))
		return nil, false
	}
	return &id, true
}
