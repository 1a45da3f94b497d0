package usecase

import (
	"context"

	"github.com/secmon-lab/surveyor/pkg/domain/model"
)

// Prompter asks the participant for answers. It is implemented by the
// terminal controller.
type Prompter interface {
	// Ask shows a question and returns the activated answer control,
	// formatted as "answer-<id>"
	Ask(ctx context.Context, question *model.Question) (string, error)

	// Notice shows a message that the participant has to acknowledge
	Notice(ctx context.Context, message string)
}
