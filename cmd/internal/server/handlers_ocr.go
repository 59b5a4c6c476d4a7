package server

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// proxyNfUploadHandler handles POST /api/v1/nf/upload-pdf.
// Forwards the PDF to the external OCR service, which extracts the invoice
// asynchronously and posts the result back through the internal worker
// endpoint.
func (s *Server) proxyNfUploadHandler(c *gin.Context) {
	sourceFile, sourceHeader, err := c.Request.FormFile("nfFile")
	if err != nil {
		s.logger.Errorf("erro ao obter arquivo do formulário: %v", err)
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("arquivo 'nfFile' não fornecido")))
		return
	}
	defer sourceFile.Close()

	contractID := c.DefaultPostForm("contract_id", "")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	// The OCR service expects the field to be called "file".
	part, err := writer.CreateFormFile("file", sourceHeader.Filename)
	if err != nil {
		s.logger.Errorf("erro ao criar form-file para o proxy: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("erro interno do servidor")))
		return
	}

	if _, err = io.Copy(part, sourceFile); err != nil {
		s.logger.Errorf("erro ao copiar arquivo para o proxy: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("erro interno do servidor")))
		return
	}

	if contractID != "" {
		if err := writer.WriteField("contract_id", contractID); err != nil {
			s.logger.Errorf("erro ao adicionar campo contract_id: %v", err)
			c.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("erro interno do servidor")))
			return
		}
	}

	if err := writer.Close(); err != nil {
		s.logger.Errorf("erro ao fechar multipart writer: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("erro interno do servidor")))
		return
	}

	ocrBaseURL := s.config.Services.OcrService.URL
	ocrURL := fmt.Sprintf("%s/process-nf/", ocrBaseURL)

	req, err := http.NewRequest(http.MethodPost, ocrURL, body)
	if err != nil {
		s.logger.Errorf("erro ao criar requisição HTTP para o proxy: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("erro interno do servidor")))
		return
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	s.logger.Infof("Encaminhando arquivo %s para o serviço OCR (contract_id=%s)", sourceHeader.Filename, contractID)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Errorf("serviço OCR indisponível: %v", err)
		c.JSON(http.StatusBadGateway, errorResponse(fmt.Errorf("serviço de processamento de arquivos temporariamente indisponível")))
		return
	}
	defer resp.Body.Close()

	c.Status(resp.StatusCode)
	for key, values := range resp.Header {
		for _, value := range values {
			c.Writer.Header().Add(key, value)
		}
	}
	io.Copy(c.Writer, resp.Body)
}

// getOcrTaskStatusHandler handles GET /api/v1/nf/tasks/:task_id/status.
func (s *Server) getOcrTaskStatusHandler(c *gin.Context) {
	taskID := c.Param("task_id")
	ocrBaseURL := s.config.Services.OcrService.URL
	statusURL := fmt.Sprintf("%s/tasks/%s/status", ocrBaseURL, taskID)

	req, err := http.NewRequest(http.MethodGet, statusURL, nil)
	if err != nil {
		s.logger.Errorf("erro ao criar requisição HTTP para status: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(fmt.Errorf("erro interno do servidor")))
		return
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, errorResponse(fmt.Errorf("serviço de processamento de arquivos temporariamente indisponível")))
		return
	}
	defer resp.Body.Close()

	c.Status(resp.StatusCode)
	for key, values := range resp.Header {
		c.Writer.Header().Set(key, values[0])
	}
	io.Copy(c.Writer, resp.Body)
}
