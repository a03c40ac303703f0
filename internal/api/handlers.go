package api

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/futurefunds/retirement-planner/internal/calculation"
	"github.com/futurefunds/retirement-planner/internal/config"
	"github.com/futurefunds/retirement-planner/internal/domain"
	"github.com/futurefunds/retirement-planner/internal/scenario"
	"github.com/futurefunds/retirement-planner/internal/schemes"
)

const (
	calculationFailed = "Failed to calculate retirement projection"
	msgUnauthorized   = "Unauthorized"
	msgMissingFields  = "Missing fields"
	msgNotFound       = "Scenario not found"
)

// inputMessage turns a validation error into the message shown to API clients.
func inputMessage(err error) string {
	switch {
	case errors.Is(err, config.ErrRetirementAgeOrder):
		return "Retirement age must be greater than current age"
	case errors.Is(err, config.ErrLifeExpectancyOrder):
		return "Life expectancy must be greater than retirement age"
	}
	return err.Error()
}

// calcRequest is a RetirementInput optionally carrying scheme selections to merge in.
type calcRequest struct {
	domain.RetirementInput
	Selections []schemes.Selection `json:"selections,omitempty"`
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	var req calcRequest
	if err := decodeBody(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body")
		return
	}
	input, err := schemes.ApplySelections(req.RetirementInput, req.Selections, s.Catalog)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	if err := config.ValidateInput(input); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, inputMessage(err))
		return
	}

	out, err := s.Calculator.Calculate(input, nowFunc().Year())
	if err != nil {
		if errors.Is(err, calculation.ErrInvalidInput) {
			writeError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}
		s.Logger.Errorf("retirement calculation failed: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, calculationFailed)
		return
	}
	body, err := json.Marshal(out)
	if err != nil {
		// Non-finite results (overflowing growth) have no JSON representation.
		s.Logger.Errorf("encoding retirement projection: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, calculationFailed)
		return
	}
	writeRaw(ctx, fasthttp.StatusOK, body)
}

type scenarioList struct {
	Scenarios []domain.Scenario `json:"scenarios"`
}

func (s *Server) handleListScenarios(ctx *fasthttp.RequestCtx) {
	userID := string(ctx.QueryArgs().Peek("userId"))
	if userID == "" {
		writeJSON(ctx, fasthttp.StatusOK, scenarioList{Scenarios: []domain.Scenario{}})
		return
	}
	sctx, cancel := s.storeContext()
	defer cancel()
	list, err := s.Store.List(sctx, userID)
	if err != nil {
		s.Logger.Errorf("listing scenarios for %s: %v", userID, err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to fetch scenarios")
		return
	}
	if list == nil {
		list = []domain.Scenario{}
	}
	writeJSON(ctx, fasthttp.StatusOK, scenarioList{Scenarios: list})
}

// createScenarioRequest uses pointers so that absent input or output can be told apart from zero values.
type createScenarioRequest struct {
	Name   string                   `json:"name"`
	UserID string                   `json:"userId"`
	Input  *domain.RetirementInput  `json:"input"`
	Output *domain.RetirementOutput `json:"output"`
}

func (s *Server) handleCreateScenario(ctx *fasthttp.RequestCtx) {
	var req createScenarioRequest
	if err := decodeBody(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		writeError(ctx, fasthttp.StatusUnauthorized, msgUnauthorized)
		return
	}
	if req.Name == "" || req.Input == nil || req.Output == nil {
		writeError(ctx, fasthttp.StatusBadRequest, msgMissingFields)
		return
	}

	sctx, cancel := s.storeContext()
	defer cancel()
	created, err := s.Store.Create(sctx, domain.Scenario{
		Name:   req.Name,
		UserID: req.UserID,
		Input:  *req.Input,
		Output: *req.Output,
	})
	switch {
	case errors.Is(err, scenario.ErrUnauthorized):
		writeError(ctx, fasthttp.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, scenario.ErrMissingFields):
		writeError(ctx, fasthttp.StatusBadRequest, msgMissingFields)
	case err != nil:
		s.Logger.Errorf("saving scenario: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to save scenario")
	default:
		writeJSON(ctx, fasthttp.StatusCreated, struct {
			Scenario domain.Scenario `json:"scenario"`
		}{created})
	}
}

func (s *Server) handleDeleteScenario(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	id, userID := string(args.Peek("id")), string(args.Peek("userId"))
	if id == "" || userID == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "Missing id or userId")
		return
	}

	sctx, cancel := s.storeContext()
	defer cancel()
	err := s.Store.Delete(sctx, id, userID)
	switch {
	case errors.Is(err, scenario.ErrNotFound):
		writeError(ctx, fasthttp.StatusNotFound, msgNotFound)
	case err != nil:
		s.Logger.Errorf("deleting scenario %s: %v", id, err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to delete scenario")
	default:
		writeJSON(ctx, fasthttp.StatusOK, struct {
			Success bool `json:"success"`
		}{true})
	}
}

type schemeList struct {
	Schemes []schemes.Scheme `json:"schemes"`
	FDRates schemes.FDRates  `json:"fdRates"`
}

func (s *Server) handleListSchemes(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, schemeList{Schemes: s.Catalog.All(), FDRates: s.Catalog.FDRates()})
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	if p, ok := s.Store.(Pinger); ok {
		sctx, cancel := s.storeContext()
		defer cancel()
		if err := p.Ping(sctx); err != nil {
			s.Logger.Warnf("store health check failed: %v", err)
			writeError(ctx, fasthttp.StatusServiceUnavailable, "Store unavailable")
			return
		}
	}
	writeJSON(ctx, fasthttp.StatusOK, struct {
		Status string `json:"status"`
	}{"ok"})
}
