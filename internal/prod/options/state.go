package options

import (
	"cmp"
	"slices"

	"prod-tracker/internal/model"
	"prod-tracker/internal/prod"
)

// State is where an options fetch currently stands.
type State int

const (
	StateNotRequested State = iota
	StateLoading
	StateLoaded
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "not_requested"
	}
}

// Placeholder captions.
const (
	DeptPlaceholder    = "Участок "
	ModelPlaceholder   = "Вид продукции"
	LoadingPlaceholder = "Загрузка списка"
	ErroredPlaceholder = "Ошибка загрузки списка"
)

// Snapshot is the loader state together with the last loaded lists.
type Snapshot struct {
	State  State
	Depts  []model.Dept
	Models []model.ProdModel
	Err    error
}

// Build turns a snapshot into the department and model dropdowns of a form
// in mode. Until the lists are loaded each dropdown holds a single
// placeholder with an empty value. Edit forms never pick department or
// model, so they always get the placeholders.
func Build(mode prod.Mode, s Snapshot) (depts, models []prod.Option) {
	if mode == prod.ModeEdit {
		return placeholder(DeptPlaceholder), placeholder(ModelPlaceholder)
	}

	switch s.State {
	case StateLoading:
		return placeholder(LoadingPlaceholder), placeholder(LoadingPlaceholder)
	case StateErrored:
		return placeholder(ErroredPlaceholder), placeholder(ErroredPlaceholder)
	case StateLoaded:
	default:
		return placeholder(DeptPlaceholder), placeholder(ModelPlaceholder)
	}

	depts = make([]prod.Option, 0, len(s.Depts))
	for _, d := range s.Depts {
		depts = append(depts, prod.Option{Label: d.Name, Value: d.ID})
	}
	slices.SortStableFunc(depts, func(a, b prod.Option) int {
		return cmp.Compare(a.Label, b.Label)
	})

	models = make([]prod.Option, 0, len(s.Models))
	for _, m := range s.Models {
		models = append(models, prod.Option{Label: m.Name, Value: m.ID})
	}
	return depts, models
}

func placeholder(label string) []prod.Option {
	return []prod.Option{{Label: label, Value: ""}}
}
