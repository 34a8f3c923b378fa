package finance

import "errors"

// ErrInfeasibleTerms is returned when the payment cannot cover the interest
// accruing on the principal, so no finite term or rate exists.
var ErrInfeasibleTerms = errors.New("infeasible loan terms")
