package httpapi

import (
	"net/http"
	"strconv"

	"github.com/alexanderramin/debtpad/internal/catalog"
	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/service"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

type platformView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	LoanCount int    `json:"loan_count"`
}

func newPlatformView(p *domain.Platform) platformView {
	return platformView{ID: p.ID, Name: p.Name, Icon: p.Icon, LoanCount: len(p.Loans)}
}

type loanView struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Rate       decimal.Decimal `json:"rate"`
	Date       string          `json:"date"`
	Term       int             `json:"term"`
	Penalty    decimal.Decimal `json:"penalty"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
}

func newLoanView(l *domain.Loan) loanView {
	return loanView{
		ID:         l.ID,
		Amount:     l.Amount,
		Rate:       l.Rate,
		Date:       domain.FormatDay(l.Date),
		Term:       l.Term,
		Penalty:    l.Penalty,
		PaidAmount: l.PaidAmount,
	}
}

type themeView struct {
	Theme  domain.Theme `json:"theme"`
	IsDark bool         `json:"is_dark"`
}

func (s *Server) getLedger(w http.ResponseWriter, r *http.Request) {
	data, err := s.deps.Snapshot.Export(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) putLedger(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	l, err := s.deps.Snapshot.Import(r.Context(), []byte(body.Raw))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"platforms": len(l.Platforms), "loans": len(l.Loans())})
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.deps.Ledger.Dashboard(r.Context(), s.now())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) putIncome(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	income := service.CoerceDecimal(field(body, "income"))
	if err := s.deps.Ledger.SetIncome(r.Context(), income); err != nil {
		s.fail(w, r, err)
		return
	}
	l, err := s.deps.Ledger.Load(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]decimal.Decimal{"income": l.Income})
}

func (s *Server) listPlatforms(w http.ResponseWriter, r *http.Request) {
	ps, err := s.deps.Platforms.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := make([]platformView, 0, len(ps))
	for _, p := range ps {
		out = append(out, newPlatformView(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createPlatform(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := s.deps.Platforms.Create(r.Context(), field(body, "name"), field(body, "icon"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newPlatformView(p))
}

func (s *Server) updatePlatform(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := s.deps.Platforms.Update(r.Context(), mux.Vars(r)["id"], field(body, "name"), field(body, "icon"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPlatformView(p))
}

func (s *Server) deletePlatform(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Platforms.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listLoans(w http.ResponseWriter, r *http.Request) {
	list, err := s.deps.Platforms.LoanList(r.Context(), mux.Vars(r)["id"], s.now())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createLoan(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	loan, err := s.deps.Loans.Create(r.Context(), mux.Vars(r)["id"], loanForm(body).Input(s.now()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newLoanView(loan))
}

func (s *Server) updateLoan(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	loan, err := s.deps.Loans.Update(r.Context(), mux.Vars(r)["id"], loanForm(body).Input(s.now()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newLoanView(loan))
}

func (s *Server) deleteLoan(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Loans.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.deps.Theme.Current(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themeView{Theme: t, IsDark: t.IsDark()})
}

func (s *Server) toggleTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.deps.Theme.Toggle(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, themeView{Theme: t, IsDark: t.IsDark()})
}

func (s *Server) getCatalog(w http.ResponseWriter, r *http.Request) {
	section, err := catalog.ParseSection(mux.Vars(r)["section"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	p := catalog.Paginate(s.deps.Catalog.Items(section), page, catalog.PerPage)
	writeJSON(w, http.StatusOK, struct {
		Section catalog.Section `json:"section"`
		catalog.Page
	}{Section: section, Page: p})
}

func loanForm(body gjson.Result) service.LoanForm {
	return service.LoanForm{
		Amount:     field(body, "amount"),
		Rate:       field(body, "rate"),
		Date:       field(body, "date"),
		Term:       field(body, "term"),
		Penalty:    field(body, "penalty"),
		PaidAmount: field(body, "paidAmount"),
	}
}
