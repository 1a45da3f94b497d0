package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

// AggregateResultSet holds response counts per question, each group
// positionally aligned to AnswerLabels
type AggregateResultSet [][]int

// Validate checks the shape is exactly QuestionCount groups of
// AnswerCount non-negative counts
func (a AggregateResultSet) Validate() error {
	if len(a) != QuestionCount {
		return goerr.New("unexpected number of question groups",
			goerr.V("expected", QuestionCount),
			goerr.V("actual", len(a)),
		)
	}
	for i, group := range a {
		if len(group) != AnswerCount {
			return goerr.New("unexpected number of counts",
				goerr.V("question", i+1),
				goerr.V("expected", AnswerCount),
				goerr.V("actual", len(group)),
			)
		}
		for j, count := range group {
			if count < 0 {
				return goerr.New("negative count",
					goerr.V("question", i+1),
					goerr.V("answer", j),
					goerr.V("count", count),
				)
			}
		}
	}
	return nil
}

// Charts builds one chart spec per question group
func (a AggregateResultSet) Charts() []ChartSpec {
	charts := make([]ChartSpec, 0, len(a))
	for i, group := range a {
		data := make([]int, len(group))
		copy(data, group)

		var labels []string
		if i < len(AnswerLabels) {
			labels = make([]string, len(AnswerLabels[i]))
			copy(labels, AnswerLabels[i])
		}

		charts = append(charts, ChartSpec{
			ID:     types.ChartID(fmt.Sprintf("chart%d", i+1)),
			Title:  fmt.Sprintf("Question %d", i+1),
			Labels: labels,
			Data:   data,
			Style:  DefaultChartStyle.Clone(),
		})
	}
	return charts
}

// DashboardStatus describes what the aggregate renderer did
type DashboardStatus string

const (
	DashboardRendered DashboardStatus = "rendered"
	DashboardSkipped  DashboardStatus = "skipped"
)

// DashboardReport is the result of one dashboard render
type DashboardReport struct {
	Status DashboardStatus `json:"status"`
	Charts []ChartSpec     `json:"charts,omitempty"`
}
