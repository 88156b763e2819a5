package httpapi

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/debtpad/internal/catalog"
	"github.com/alexanderramin/debtpad/internal/repository"
	"github.com/alexanderramin/debtpad/internal/service"
	"github.com/alexanderramin/debtpad/internal/testutil"
	"github.com/alexanderramin/debtpad/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type apiEnv struct {
	srv  *Server
	logs *bytes.Buffer
	bus  *theme.Bus
}

func setupAPI(t *testing.T) apiEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ledgers := repository.NewSQLiteLedgerRepo(database)
	bus := theme.NewBus()
	cat, err := catalog.Load()
	require.NoError(t, err)

	var logs bytes.Buffer
	srv := New(Deps{
		Ledger:    service.NewLedgerService(ledgers, uow),
		Platforms: service.NewPlatformService(ledgers, uow),
		Loans:     service.NewLoanService(ledgers, uow),
		Theme:     service.NewThemeService(repository.NewSQLiteSettingsRepo(database), uow, bus),
		Snapshot:  service.NewSnapshotService(ledgers, uow),
		Catalog:   cat,
	}, slog.New(slog.NewTextHandler(&logs, nil)))
	srv.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	return apiEnv{srv: srv, logs: &logs, bus: bus}
}

func (e apiEnv) do(t *testing.T, method, path, body string) (int, gjson.Result) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	rec := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(rec, req)
	return rec.Code, gjson.ParseBytes(rec.Body.Bytes())
}

func TestAPI_PlatformAndLoanLifecycle(t *testing.T) {
	e := setupAPI(t)

	code, p := e.do(t, http.MethodPost, "/api/platforms", `{"name":"Card Co","icon":"💳"}`)
	require.Equal(t, http.StatusCreated, code)
	pid := p.Get("id").String()
	require.NotEmpty(t, pid)

	code, loan := e.do(t, http.MethodPost, "/api/platforms/"+pid+"/loans",
		`{"amount":"1000","rate":12,"date":"2025-03-07","term":4,"penalty":"oops"}`)
	require.Equal(t, http.StatusCreated, code)
	lid := loan.Get("id").String()
	assert.Equal(t, "0", loan.Get("penalty").String(), "non-numeric input coerces to zero")

	code, list := e.do(t, http.MethodGet, "/api/platforms/"+pid+"/loans", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "active", list.Get("rows.0.status").String())
	assert.Equal(t, "edit_loan", list.Get("rows.0.actions.0.kind").String())

	code, loan = e.do(t, http.MethodPut, "/api/loans/"+lid, `{"amount":1000,"date":"2025-03-07","term":4,"paidAmount":1000}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, lid, loan.Get("id").String())

	code, d := e.do(t, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "free", d.Get("freedom.state").String())
	assert.Equal(t, "1000", d.Get("stats.total_debt").String())
	assert.Equal(t, "open_platform", d.Get("cards.0.actions.0.kind").String())

	code, _ = e.do(t, http.MethodDelete, "/api/loans/"+lid, "")
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = e.do(t, http.MethodDelete, "/api/platforms/"+pid, "")
	assert.Equal(t, http.StatusNoContent, code)

	code, body := e.do(t, http.MethodDelete, "/api/platforms/"+pid, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, body.Get("error").String())
}

func TestAPI_ValidationErrors(t *testing.T) {
	e := setupAPI(t)

	code, body := e.do(t, http.MethodPost, "/api/platforms", `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Get("error").String(), "name")

	_, p := e.do(t, http.MethodPost, "/api/platforms", `{"name":"Bank"}`)
	code, _ = e.do(t, http.MethodPost, "/api/platforms/"+p.Get("id").String()+"/loans", `{"amount":0}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = e.do(t, http.MethodPost, "/api/platforms", `not json`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = e.do(t, http.MethodPost, "/api/platforms", `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = e.do(t, http.MethodPost, "/api/platforms/missing/loans", `{"amount":5}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAPI_IncomeAndLedgerImportExport(t *testing.T) {
	e := setupAPI(t)

	code, body := e.do(t, http.MethodPut, "/api/income", `{"income":"2500.5"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "2500.5", body.Get("income").String())

	code, body = e.do(t, http.MethodPut, "/api/ledger",
		`{"income":100,"platforms":[{"id":"p1","name":"Imported","loans":[{"id":"l1","amount":50,"date":"2025-01-01","term":1}]}]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), body.Get("loans").Int())

	code, body = e.do(t, http.MethodGet, "/api/ledger", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Imported", body.Get("platforms.0.name").String())
	assert.Equal(t, "100", body.Get("income").Raw)

	code, _ = e.do(t, http.MethodPut, "/api/ledger", `{"platforms":{}}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAPI_ThemeToggle(t *testing.T) {
	e := setupAPI(t)
	var published []theme.Change
	e.bus.Subscribe(func(c theme.Change) { published = append(published, c) })

	code, body := e.do(t, http.MethodGet, "/api/theme", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dark", body.Get("theme").String())

	code, body = e.do(t, http.MethodPost, "/api/theme/toggle", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "light", body.Get("theme").String())
	assert.False(t, body.Get("is_dark").Bool())
	assert.Len(t, published, 1)
}

func TestAPI_Catalog(t *testing.T) {
	e := setupAPI(t)

	code, body := e.do(t, http.MethodGet, "/api/catalog/tools?page=99", "")
	require.Equal(t, http.StatusOK, code)
	total := body.Get("total_pages").Int()
	assert.Equal(t, total, body.Get("page").Int(), "page clamps to the last one")
	assert.Equal(t, "tools", body.Get("section").String())

	code, _ = e.do(t, http.MethodGet, "/api/catalog/music", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAPI_UnknownRouteAndMethod(t *testing.T) {
	e := setupAPI(t)

	code, body := e.do(t, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, body.Get("error").String())

	code, _ = e.do(t, http.MethodPatch, "/api/dashboard", "")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
}

func TestAPI_LogsRequests(t *testing.T) {
	e := setupAPI(t)
	e.do(t, http.MethodGet, "/api/dashboard", "")

	out := e.logs.String()
	assert.Contains(t, out, "http_request")
	assert.Contains(t, out, "path=/api/dashboard")
	assert.Contains(t, out, "status=200")
}
