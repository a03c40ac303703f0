package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/futurefunds/retirement-planner/internal/api"
	"github.com/futurefunds/retirement-planner/internal/calculation"
	"github.com/futurefunds/retirement-planner/internal/config"
	"github.com/futurefunds/retirement-planner/internal/domain"
	"github.com/futurefunds/retirement-planner/internal/output"
	"github.com/futurefunds/retirement-planner/internal/scenario"
)

func loadReport(t *testing.T) *output.Report {
	t.Helper()
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(examplePlan)
	require.NoError(t, err)
	input, err := parser.Resolve(plan)
	require.NoError(t, err)
	out, err := calculation.NewRetirementCalculator().Calculate(input, plan.BaseYear)
	require.NoError(t, err)
	return &output.Report{Name: plan.Name, Input: input, Output: out}
}

func TestOutputGeneration(t *testing.T) {
	report := loadReport(t)
	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			paths, err := output.GenerateReport(report, name, dir)
			require.NoError(t, err)
			require.Len(t, paths, 1)
			b, err := os.ReadFile(paths[0])
			require.NoError(t, err)
			assert.NotEmpty(t, b)
			assert.True(t, strings.HasPrefix(filepath.Base(paths[0]), "retirement_report_"))
		})
	}
}

// The API must return the same projection as the engine for a plan's resolved input.
func TestAPIMatchesEngine(t *testing.T) {
	report := loadReport(t)
	server := api.NewServer(scenario.NewMemoryStore(), nil, nil)

	body, err := json.Marshal(report.Input)
	require.NoError(t, err)
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI("/api/calc/retirement")
	ctx.Request.SetBody(body)
	server.Handler()(ctx)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))

	var got domain.RetirementOutput
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	assert.InDelta(t, report.Output.RequiredCorpus, got.RequiredCorpus, 1e-6)
	assert.InDelta(t, report.Output.AchievedCorpus, got.AchievedCorpus, 1e-6)
	assert.Equal(t, report.Output.IsGoalAchievable, got.IsGoalAchievable)
	assert.Len(t, got.YearlyProjection, len(report.Output.YearlyProjection))
}

func TestScenarioPersistsAcrossFileStores(t *testing.T) {
	report := loadReport(t)
	path := filepath.Join(t.TempDir(), "scenarios.json")

	first, err := scenario.NewFileStore(path)
	require.NoError(t, err)
	created, err := first.Create(context.Background(), domain.Scenario{
		Name:   report.Name,
		UserID: "saver-1",
		Input:  report.Input,
		Output: *report.Output,
	})
	require.NoError(t, err)

	second, err := scenario.NewFileStore(path)
	require.NoError(t, err)
	list, err := second.List(context.Background(), "saver-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Len(t, list[0].Input.Schemes, 2)
	assert.InDelta(t, report.Output.AchievedCorpus, list[0].Output.AchievedCorpus, 1e-6)
}
