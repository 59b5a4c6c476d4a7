package nf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNfe = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00">
  <NFe>
    <infNFe Id="NFe3526..." versao="4.00">
      <ide>
        <nNF>12345</nNF>
        <serie>1</serie>
        <dhEmi>2026-03-10T14:30:00-03:00</dhEmi>
      </ide>
      <emit>
        <xNome>Votorantim Cimentos SA</xNome>
      </emit>
      <det nItem="1">
        <prod>
          <xProd>CIMENTO CP-II 50KG</xProd>
          <NCM>25232910</NCM>
          <uCom>SC</uCom>
          <qCom>200.0000</qCom>
          <vUnCom>71.0000000000</vUnCom>
          <vProd>14200.00</vProd>
        </prod>
      </det>
      <det nItem="2">
        <prod>
          <xProd>ARGAMASSA AC-III 20KG</xProd>
          <NCM>32149000</NCM>
          <uCom>SC</uCom>
          <qCom>50.0000</qCom>
          <vUnCom>28.9000000000</vUnCom>
          <vProd>1445.00</vProd>
        </prod>
      </det>
      <total>
        <ICMSTot>
          <vNF>15645.00</vNF>
        </ICMSTot>
      </total>
    </infNFe>
  </NFe>
</nfeProc>`

func TestParseNfeXML(t *testing.T) {
	params, err := parseNfeXML([]byte(sampleNfe))
	require.NoError(t, err)

	assert.Equal(t, "12345", params.Number)
	assert.Equal(t, "1", params.Series)
	assert.Equal(t, "Votorantim Cimentos SA", params.Supplier)
	assert.InDelta(t, 15645.0, params.Value, 0.001)

	expectedDate, _ := time.Parse(time.RFC3339, "2026-03-10T14:30:00-03:00")
	assert.True(t, params.IssueDate.Equal(expectedDate))

	require.Len(t, params.Items, 2)
	first := params.Items[0]
	assert.Equal(t, "CIMENTO CP-II 50KG", first.Description)
	assert.InDelta(t, 200.0, first.Quantity, 0.001)
	assert.InDelta(t, 71.0, first.UnitValue, 0.001)
	assert.InDelta(t, 14200.0, first.TotalValue, 0.001)
	require.NotNil(t, first.Ncm)
	assert.Equal(t, "25232910", *first.Ncm)
	require.NotNil(t, first.Unit)
	assert.Equal(t, "SC", *first.Unit)
}

func TestParseNfeXMLBareRoot(t *testing.T) {
	bare := `<NFe><infNFe>
  <ide><nNF>77</nNF><serie>2</serie><dEmi>2026-01-05</dEmi></ide>
  <emit><xNome>Gerdau Aços SA</xNome></emit>
  <det><prod><xProd>VERGALHAO CA-50</xProd><qCom>10</qCom><vUnCom>45</vUnCom><vProd>450</vProd></prod></det>
  <total><ICMSTot><vNF>450.00</vNF></ICMSTot></total>
</infNFe></NFe>`

	params, err := parseNfeXML([]byte(bare))
	require.NoError(t, err)
	assert.Equal(t, "77", params.Number)
	assert.Equal(t, "Gerdau Aços SA", params.Supplier)
	assert.Equal(t, "2026-01-05", params.IssueDate.Format("2006-01-02"))
}

func TestParseNfeXMLTotalFallsBackToItemSum(t *testing.T) {
	noTotal := `<NFe><infNFe>
  <ide><nNF>9</nNF><serie>1</serie><dEmi>2026-02-01</dEmi></ide>
  <emit><xNome>Fornecedor X</xNome></emit>
  <det><prod><xProd>AREIA</xProd><qCom>5</qCom><vUnCom>100</vUnCom><vProd>500</vProd></prod></det>
  <det><prod><xProd>BRITA</xProd><qCom>2</qCom><vUnCom>150</vUnCom><vProd>300</vProd></prod></det>
</infNFe></NFe>`

	params, err := parseNfeXML([]byte(noTotal))
	require.NoError(t, err)
	assert.InDelta(t, 800.0, params.Value, 0.001)
}

func TestParseNfeXMLRejectsBrokenDocuments(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"not xml", "isso não é xml"},
		{"missing number", `<NFe><infNFe><emit><xNome>X</xNome></emit></infNFe></NFe>`},
		{"missing emitter", `<NFe><infNFe><ide><nNF>1</nNF><dEmi>2026-01-01</dEmi></ide></infNFe></NFe>`},
		{"missing date", `<NFe><infNFe><ide><nNF>1</nNF></ide><emit><xNome>X</xNome></emit></infNFe></NFe>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseNfeXML([]byte(tt.xml))
			assert.Error(t, err)
		})
	}
}
