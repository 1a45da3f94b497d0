package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/surveyor/pkg/domain/model"
	"github.com/slack-go/slack"
)

const barWidth = 10

// bar draws share as a fixed width text gauge
func bar(count, total int) string {
	filled := 0
	if total > 0 {
		filled = (count*barWidth + total/2) / total
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return (count*100 + total/2) / total
}

// BuildChartBlocks creates Slack blocks summarizing one question chart
func BuildChartBlocks(spec model.ChartSpec) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, spec.Title, false, false),
		),
	}

	total := spec.Total()
	if total == 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "_No responses yet_", false, false),
			nil,
			nil,
		))
	} else {
		var lines []string
		for i, count := range spec.Data {
			lines = append(lines, fmt.Sprintf("`%s` *%s*: %d (%d%%)",
				bar(count, total), spec.LabelAt(i), count, percent(count, total)))
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, strings.Join(lines, "\n"), false, false),
			nil,
			nil,
		))
	}

	blocks = append(blocks, slack.NewContextBlock(
		"",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("%s: %d", spec.Style.DatasetLabel, total), false, false),
	))
	return blocks
}

// chartFallbackText is shown in notifications where blocks are not rendered
func chartFallbackText(spec model.ChartSpec) string {
	parts := make([]string, 0, len(spec.Data))
	for i, count := range spec.Data {
		parts = append(parts, fmt.Sprintf("%s %d", spec.LabelAt(i), count))
	}
	return fmt.Sprintf("%s: %s", spec.Title, strings.Join(parts, ", "))
}
