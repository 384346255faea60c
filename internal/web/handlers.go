package web

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/eei/returns-calculator/internal/config"
	"github.com/eei/returns-calculator/internal/domain"
	"github.com/eei/returns-calculator/internal/output"
	"go.uber.org/zap"
)

type pageData struct {
	Title  string
	Page   string
	Values map[string]string
	Panel  template.HTML
}

// calculateFunc turns submitted fields into a result. A nil result means
// the submission did not belong to this calculator.
type calculateFunc func(src config.FieldSource) *domain.CalculationResult

func (s *Server) franchiseCalc(src config.FieldSource) *domain.CalculationResult {
	in, ok := config.CollectFranchise(src)
	if !ok {
		return nil
	}
	return s.engine.Franchise(in)
}

func (s *Server) investorCalc(src config.FieldSource) *domain.CalculationResult {
	in, ok := config.CollectInvestor(src)
	if !ok {
		return nil
	}
	return s.engine.Investor(in)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, "index", pageData{Title: s.cfg.SiteTitle, Page: "index"})
}

func (s *Server) franchisePage(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, "franchise", s.franchiseCalc)
}

func (s *Server) investorPage(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, "investors", s.investorCalc)
}

// page serves the form on GET and re-renders it with the result panel on POST.
func (s *Server) page(w http.ResponseWriter, r *http.Request, name string, calc calculateFunc) {
	data := pageData{Title: s.cfg.SiteTitle, Page: name}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		data.Values = firstValues(r.PostForm)
		panel, err := output.RenderPanel(calc(config.FormValues(r.PostForm)))
		if err != nil {
			s.logger.Error("render panel", zap.String("page", name), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		data.Panel = panel
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.render(w, name, data)
}

func (s *Server) franchiseFragment(w http.ResponseWriter, r *http.Request) {
	s.fragment(w, r, s.franchiseCalc)
}

func (s *Server) investorFragment(w http.ResponseWriter, r *http.Request) {
	s.fragment(w, r, s.investorCalc)
}

// fragment returns only the result panel, in the format named by ?format=
// (html by default). Rejected inputs answer 422 with the message; a
// submission for another form answers 204.
func (s *Server) fragment(w http.ResponseWriter, r *http.Request, calc calculateFunc) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "html"
	}
	f, err := output.LookupFormatter(format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := calc(config.FormValues(r.PostForm))
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	body, err := f.Format(result)
	if err != nil {
		s.logger.Error("format result", zap.String("format", f.Name()), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType(f))
	if result.IsMessage() {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	w.Write(body)
}

func (s *Server) render(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages[name].ExecuteTemplate(w, "layout", data); err != nil {
		s.logger.Error("render page", zap.String("page", name), zap.Error(err))
	}
}

func contentType(f output.Formatter) string {
	switch f.Ext() {
	case "html":
		return "text/html; charset=utf-8"
	case "json":
		return "application/json"
	case "csv":
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func firstValues(form url.Values) map[string]string {
	values := make(map[string]string, len(form))
	for k, vs := range form {
		if len(vs) > 0 {
			values[k] = vs[0]
		}
	}
	return values
}
