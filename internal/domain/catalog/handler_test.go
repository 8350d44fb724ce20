package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_CreateService(t *testing.T) {
	h := NewHandler(NewCatalog(NewMemServiceRepo()))
	e := echo.New()

	body := `{"name":"Consulta General","price":800,"duration_minutes":45}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateService(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_CreateService_MissingName(t *testing.T) {
	h := NewHandler(NewCatalog(NewMemServiceRepo()))
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"price":800}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateService(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_ListServices(t *testing.T) {
	svc := NewCatalog(NewMemServiceRepo())
	h := NewHandler(svc)
	e := echo.New()

	for _, name := range []string{"Consulta General", "Electrocardiograma"} {
		if err := svc.CreateService(context.Background(), &Service{Name: name, Price: 800}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListServices(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Data  []*Service `json:"data"`
		Total int        `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 2 || len(resp.Data) != 2 {
		t.Errorf("expected 2 services, got %+v", resp)
	}
	// Catalog order is insertion order.
	if resp.Data[0].Name != "Consulta General" {
		t.Errorf("expected insertion order, got %s first", resp.Data[0].Name)
	}
}
