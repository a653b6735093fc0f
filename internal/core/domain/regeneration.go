package domain

import "github.com/SscSPs/procurement_tracker/internal/apperrors"

// RegenerationPlan is the reconciled line set of a regenerated order.
type RegenerationPlan struct {
	// Lines is the new line set. Matched lines keep their identifier and received quantity.
	Lines []OrderLine
	// RemovedLineIDs are old lines with nothing received that disappear.
	RemovedLineIDs []string
}

// PlanRegeneration diffs incoming lines against the existing ones by material code and
// description. Incoming lines must already carry their material snapshot. Lines repeated
// under the same identity pair off in order.
func PlanRegeneration(existing, incoming []OrderLine, newID func() string) (RegenerationPlan, error) {
	pool := make(map[string][]OrderLine, len(existing))
	for _, l := range existing {
		key := l.identityKey()
		pool[key] = append(pool[key], l)
	}

	matched := make(map[string]bool, len(existing))
	plan := RegenerationPlan{Lines: make([]OrderLine, 0, len(incoming))}
	for _, in := range incoming {
		key := in.identityKey()
		candidates := pool[key]
		if len(candidates) == 0 {
			in.LineID = newID()
			in.ReceivedQuantity = 0
			plan.Lines = append(plan.Lines, in)
			continue
		}
		old := candidates[0]
		pool[key] = candidates[1:]
		if in.Quantity < old.ReceivedQuantity {
			return RegenerationPlan{}, &apperrors.RegenerationConflictError{
				OrderLineID: old.LineID,
				Description: old.Description,
				Requested:   in.Quantity,
				Received:    old.ReceivedQuantity,
				Reason:      "new quantity is below the received quantity",
			}
		}
		matched[old.LineID] = true
		in.LineID = old.LineID
		in.ReceivedQuantity = old.ReceivedQuantity
		plan.Lines = append(plan.Lines, in)
	}

	for _, old := range existing {
		if matched[old.LineID] {
			continue
		}
		if old.ReceivedQuantity > 0 {
			return RegenerationPlan{}, &apperrors.RegenerationConflictError{
				OrderLineID: old.LineID,
				Description: old.Description,
				Requested:   0,
				Received:    old.ReceivedQuantity,
				Reason:      "line with recorded receptions would be dropped",
			}
		}
		plan.RemovedLineIDs = append(plan.RemovedLineIDs, old.LineID)
	}
	return plan, nil
}
