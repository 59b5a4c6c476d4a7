package nf

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dalmoeng/custos-go/cmd/internal/api_models"
	"github.com/dalmoeng/custos-go/cmd/internal/services/apierrors"
)

// nfeDocument covers the subset of the NF-e layout the import needs. Both
// the signed envelope (nfeProc) and a bare NFe element are accepted.
type nfeDocument struct {
	InfNFe nfeInf `xml:"NFe>infNFe"`
}

type nfeBare struct {
	InfNFe nfeInf `xml:"infNFe"`
}

type nfeInf struct {
	Ide   nfeIde   `xml:"ide"`
	Emit  nfeEmit  `xml:"emit"`
	Det   []nfeDet `xml:"det"`
	Total nfeTotal `xml:"total"`
}

type nfeIde struct {
	Number string `xml:"nNF"`
	Series string `xml:"serie"`
	DhEmi  string `xml:"dhEmi"`
	DEmi   string `xml:"dEmi"`
}

type nfeEmit struct {
	Name string `xml:"xNome"`
}

type nfeDet struct {
	Prod nfeProd `xml:"prod"`
}

type nfeProd struct {
	Description string `xml:"xProd"`
	Ncm         string `xml:"NCM"`
	Unit        string `xml:"uCom"`
	Quantity    string `xml:"qCom"`
	UnitValue   string `xml:"vUnCom"`
	TotalValue  string `xml:"vProd"`
}

type nfeTotal struct {
	ICMSTot struct {
		VNF string `xml:"vNF"`
	} `xml:"ICMSTot"`
}

// ImportXML parses one NF-e XML file and persists it as a pending invoice.
func (s *Service) ImportXML(ctx context.Context, filename string, r io.Reader, contractID *int64) (*api_models.NotaFiscal, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	params, err := parseNfeXML(data)
	if err != nil {
		return nil, err
	}
	params.ContractID = contractID
	params.XmlFile = &filename

	return s.Create(ctx, *params)
}

// ImportBatch imports every XML inside a ZIP archive. Per-file failures are
// collected in the result, never aborting the batch.
func (s *Service) ImportBatch(ctx context.Context, zipName string, r io.Reader, contractID *int64) (*api_models.NFImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", zipName, err)
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apierrors.NewValidationError("arquivo ZIP inválido: %v", err)
	}

	result := &api_models.NFImportResult{
		NotasFiscais: []api_models.NotaFiscal{},
		Errors:       []string{},
		Warnings:     []string{},
	}

	for _, file := range archive.File {
		if file.FileInfo().IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(file.Name)) != ".xml" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: ignorado (não é XML)", file.Name))
			continue
		}

		rc, err := file.Open()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.Name, err))
			continue
		}
		imported, err := s.ImportXML(ctx, file.Name, rc, contractID)
		rc.Close()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.Name, err))
			continue
		}
		result.NotasFiscais = append(result.NotasFiscais, *imported)
	}

	result.Success = len(result.NotasFiscais) > 0
	s.logger.WithField("zip", zipName).Infof("batch import: %d invoices, %d errors",
		len(result.NotasFiscais), len(result.Errors))

	return result, nil
}

func parseNfeXML(data []byte) (*CreateParams, error) {
	var envelope nfeDocument
	if err := xml.Unmarshal(data, &envelope); err != nil {
		return nil, apierrors.NewValidationError("XML de NF-e inválido: %v", err)
	}

	inf := envelope.InfNFe
	if inf.Ide.Number == "" {
		var bare nfeBare
		if err := xml.Unmarshal(data, &bare); err == nil {
			inf = bare.InfNFe
		}
	}
	if inf.Ide.Number == "" {
		return nil, apierrors.NewValidationError("XML de NF-e inválido: número da nota não encontrado")
	}
	if inf.Emit.Name == "" {
		return nil, apierrors.NewValidationError("XML de NF-e inválido: emitente não encontrado")
	}

	issueDate, err := parseNfeDate(inf.Ide)
	if err != nil {
		return nil, err
	}

	total := nfeFloat(inf.Total.ICMSTot.VNF)
	items := make([]ItemParams, 0, len(inf.Det))
	var itemsTotal float64
	for _, det := range inf.Det {
		item := ItemParams{
			Description: det.Prod.Description,
			Quantity:    nfeFloat(det.Prod.Quantity),
			UnitValue:   nfeFloat(det.Prod.UnitValue),
			TotalValue:  nfeFloat(det.Prod.TotalValue),
		}
		if det.Prod.Ncm != "" {
			ncm := det.Prod.Ncm
			item.Ncm = &ncm
		}
		if det.Prod.Unit != "" {
			unit := det.Prod.Unit
			item.Unit = &unit
		}
		itemsTotal += item.TotalValue
		items = append(items, item)
	}
	if total == 0 {
		total = itemsTotal
	}

	return &CreateParams{
		Number:    inf.Ide.Number,
		Series:    inf.Ide.Series,
		Supplier:  inf.Emit.Name,
		Value:     total,
		IssueDate: issueDate,
		Items:     items,
	}, nil
}

func parseNfeDate(ide nfeIde) (time.Time, error) {
	if ide.DhEmi != "" {
		t, err := time.Parse(time.RFC3339, ide.DhEmi)
		if err == nil {
			return t, nil
		}
	}
	if ide.DEmi != "" {
		t, err := time.Parse("2006-01-02", ide.DEmi)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, apierrors.NewValidationError("XML de NF-e inválido: data de emissão ausente ou ilegível")
}

func nfeFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
