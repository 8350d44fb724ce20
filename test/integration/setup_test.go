package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/raul0r/Gestor-Medico/internal/domain/billing"
	"github.com/raul0r/Gestor-Medico/internal/domain/catalog"
	"github.com/raul0r/Gestor-Medico/internal/domain/patient"
	"github.com/raul0r/Gestor-Medico/internal/domain/scheduling"
	"github.com/raul0r/Gestor-Medico/internal/platform/blobstore"
	"github.com/raul0r/Gestor-Medico/internal/platform/middleware"
)

// fileStore mirrors the adapter the server wires between the blob store and
// the patient document endpoints.
type fileStore struct {
	store blobstore.Store
}

func (f fileStore) Put(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	meta, err := f.store.Put(ctx, name, contentType, r)
	if err != nil {
		return "", err
	}
	return "/api/v1/files/" + meta.ID.String(), nil
}

// newTestServer wires the full HTTP surface against in-memory repositories,
// the same shape runServer builds, minus config and process lifecycle.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	patientRepo := patient.NewMemRepo()
	serviceRepo := catalog.NewMemServiceRepo()
	apptRepo := scheduling.NewMemRepo()
	blobs := blobstore.NewMemory(1 << 20)

	patientSvc := patient.NewService(patientRepo)
	catalogSvc := catalog.NewCatalog(serviceRepo)
	schedSvc := scheduling.NewService(apptRepo, patientRepo, serviceRepo, time.UTC)
	billingSvc := billing.NewService(apptRepo, serviceRepo, time.UTC)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recovery(zerolog.Nop()))
	e.Use(middleware.RequestID())

	apiV1 := e.Group("/api/v1")
	patient.NewHandler(patientSvc, fileStore{blobs}, 1<<20).RegisterRoutes(apiV1)
	catalog.NewHandler(catalogSvc).RegisterRoutes(apiV1)
	scheduling.NewHandler(schedSvc, 8).RegisterRoutes(apiV1)
	billing.NewHandler(billingSvc, time.UTC).RegisterRoutes(apiV1)
	blobstore.NewHandler(blobs).RegisterRoutes(apiV1)
	return e
}

// doJSON sends a JSON request through the full router and decodes the reply
// into out when it is non-nil.
func doJSON(t *testing.T, e *echo.Echo, method, path, body string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if out != nil && rec.Code < http.StatusBadRequest {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s %s response: %v", method, path, err)
		}
	}
	return rec
}
