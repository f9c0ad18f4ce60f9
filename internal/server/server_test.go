package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letspeppol/letspeppol/internal/logger"
	"github.com/letspeppol/letspeppol/internal/model"
	"github.com/letspeppol/letspeppol/internal/profile"
	"github.com/letspeppol/letspeppol/internal/server"
	"github.com/letspeppol/letspeppol/internal/ubl"
)

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	cfg := &profile.Config{
		Organization: profile.Organization{
			Name:             "Ponder Source BV",
			EnterpriseNumber: "0705969661",
			VATNumber:        "BE0705969661",
			IBAN:             "BE71096123456769",
			CountryCode:      "BE",
		},
		Defaults: profile.Defaults{
			Currency:     "EUR",
			PaymentTerms: "30_DAYS",
			TaxPercent:   "21",
			TaxCategory:  "S",
			UnitCode:     "C62",
		},
	}
	return server.NewServer(config, cfg, logger.New("error", false))
}

func invoiceXML(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "ubl", "testdata", "invoice.xml"))
	require.NoError(t, err)
	return data
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestParseEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewReader(invoiceXML(t)))
	req.Header.Set("Content-Type", "application/xml")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Kind     model.Kind      `json:"kind"`
		Document json.RawMessage `json:"document"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, model.KindInvoice, response.Kind)

	var inv model.Invoice
	require.NoError(t, json.Unmarshal(response.Document, &inv))
	assert.Equal(t, "Snippet1", inv.ID)
	assert.Equal(t, "EUR", inv.DocumentCurrencyCode)
}

func TestParseEndpoint_EmptyBody(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseEndpoint_MalformedXML(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader("<Invoice>"))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBuildEndpoint_RoundTripsParse(t *testing.T) {
	srv := newTestServer()

	parseReq := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewReader(invoiceXML(t)))
	parseW := httptest.NewRecorder()
	srv.Handler().ServeHTTP(parseW, parseReq)
	require.Equal(t, http.StatusOK, parseW.Code)

	var parsed struct {
		Kind     model.Kind      `json:"kind"`
		Document json.RawMessage `json:"document"`
	}
	require.NoError(t, json.Unmarshal(parseW.Body.Bytes(), &parsed))

	buildBody, err := json.Marshal(server.BuildRequest{Kind: parsed.Kind, Document: parsed.Document})
	require.NoError(t, err)

	buildReq := httptest.NewRequest(http.MethodPost, "/api/v1/build", bytes.NewReader(buildBody))
	buildReq.Header.Set("Content-Type", "application/json")
	buildW := httptest.NewRecorder()
	srv.Handler().ServeHTTP(buildW, buildReq)

	require.Equal(t, http.StatusOK, buildW.Code)
	assert.Equal(t, "application/xml", buildW.Header().Get("Content-Type"))
	assert.Contains(t, buildW.Body.String(), "<cbc:ID>Snippet1</cbc:ID>")
}

func TestTotalsEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/totals", bytes.NewReader(invoiceXML(t)))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	doc, _, err := ubl.Parse(w.Body.Bytes())
	require.NoError(t, err)
	inv := doc.(*model.Invoice)

	// Lines: 400*7 + 150*10 = 4300, charge 25 passes through, 25% VAT.
	assert.Equal(t, "4300", inv.LegalMonetaryTotal.LineExtensionAmount.Raw)
	assert.Equal(t, "4325", inv.LegalMonetaryTotal.TaxExclusiveAmount.Raw)
	require.Len(t, inv.TaxTotal, 1)
	assert.Equal(t, "1075", inv.TaxTotal[0].TaxAmount.Raw)
	assert.Equal(t, "5400", inv.LegalMonetaryTotal.PayableAmount.Raw)
}

func TestConvertEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader(invoiceXML(t)))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	out := w.Body.String()
	assert.Contains(t, out, "<cbc:CreditNoteTypeCode>381</cbc:CreditNoteTypeCode>")
	assert.Contains(t, out, "<cac:CreditNoteLine>")
	assert.NotContains(t, out, "cbc:DueDate")
}

func TestComposeEndpoint(t *testing.T) {
	srv := newTestServer()

	body, err := json.Marshal(server.ComposeRequest{
		Kind: model.KindInvoice,
		ID:   "INV-42",
		Customer: server.ComposeCustomer{
			Name:             "BuyerTradingName AS",
			EnterpriseNumber: "1023290711",
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compose", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	doc, _, err := ubl.Parse(w.Body.Bytes())
	require.NoError(t, err)
	inv := doc.(*model.Invoice)
	assert.Equal(t, "INV-42", inv.ID)
	assert.Equal(t, "Ponder Source BV", inv.AccountingSupplierParty.Party.PartyName.Name)
	assert.Equal(t, "BuyerTradingName AS", inv.AccountingCustomerParty.Party.PartyName.Name)
}

func TestComposeEndpoint_GeneratesID(t *testing.T) {
	srv := newTestServer()

	body, err := json.Marshal(server.ComposeRequest{
		Kind:     model.KindCreditNote,
		Customer: server.ComposeCustomer{Name: "X"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compose", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	doc, _, err := ubl.Parse(w.Body.Bytes())
	require.NoError(t, err)
	cn := doc.(*model.CreditNote)
	assert.NotEmpty(t, cn.ID)
	assert.Equal(t, "381", cn.CreditNoteTypeCode.Raw)
}
