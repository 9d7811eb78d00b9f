package matcher

// Reason names the first predicate that rejected a request/listing pair.
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonCategory Reason = "category"
	ReasonSize     Reason = "size"
	ReasonColor    Reason = "color"
	ReasonBudget   Reason = "budget"
)

// RetireOutput lists the requests retire mode fulfilled.
type RetireOutput struct {
	Fulfilled []string
	Failed    int
}
