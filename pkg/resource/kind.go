package resource

import "github.com/pkg/errors"

// Kind identifies one content collection. The set is closed: everything that
// dispatches on a kind (routes, bin restore) switches over these constants.
type Kind string

const (
	KindDiary             Kind = "diary"
	KindPlans             Kind = "plans"
	KindPlannerCategories Kind = "planner-categories"
	KindExperiments       Kind = "experiments"
	KindMovies            Kind = "movies"
	KindRecipes           Kind = "recipes"
	KindCourses           Kind = "courses"
	KindTravel            Kind = "travel"
	KindStrategy          Kind = "strategy"
	KindLibrary           Kind = "library"
	KindDocuments         Kind = "documents"
)

// ErrUnknownKind is returned when a stored or submitted source tag does not
// name any collection.
var ErrUnknownKind = errors.New("unknown resource kind")

// All lists every kind, in route order.
func All() []Kind {
	return []Kind{
		KindDiary, KindPlans, KindPlannerCategories, KindExperiments,
		KindMovies, KindRecipes, KindCourses, KindTravel,
		KindStrategy, KindLibrary, KindDocuments,
	}
}

// ParseKind maps a wire tag to a Kind. The admin UI historically staged
// experiment deletions under "experimental", so that alias is kept.
func ParseKind(s string) (Kind, error) {
	if s == "experimental" {
		return KindExperiments, nil
	}
	for _, k := range All() {
		if s == string(k) {
			return k, nil
		}
	}
	return "", errors.Wrap(ErrUnknownKind, s)
}
