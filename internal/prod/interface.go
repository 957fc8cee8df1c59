package prod

import (
	"context"

	"prod-tracker/internal/model"
)

// Writer is the remote write operation. It creates the batch when the payload
// has no ID and updates it otherwise.
type Writer interface {
	UpsertProd(ctx context.Context, input Payload) (model.Prod, error)
}

// CommitHook runs once, synchronously, after a write has committed.
type CommitHook interface {
	AfterCommit(ctx context.Context, written model.Prod) error
}

type UseCase interface {
	// Form sessions
	CreateForm(ctx context.Context) (FormOutput, error)
	EditForm(ctx context.Context, input EditFormInput) (FormOutput, error)
	Detail(ctx context.Context, id string) (FormOutput, error)
	Open(ctx context.Context, id string) (FormOutput, error)
	Close(ctx context.Context, id string) (FormOutput, error)

	// Edits
	EditSelection(ctx context.Context, input EditSelectionInput) (FormOutput, error)
	EditNumber(ctx context.Context, input EditNumberInput) (FormOutput, error)
	ToggleStatus(ctx context.Context, input ToggleStatusInput) (FormOutput, error)

	Submit(ctx context.Context, id string) (SubmitOutput, error)

	// Read side
	Options(ctx context.Context, input OptionsInput) (OptionsOutput, error)
	Dept(ctx context.Context, id string) (DeptOutput, error)
}
