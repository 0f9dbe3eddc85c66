// Package cost defines the cost model of the oriented grid search: what a
// forward step costs, what a 90° turn costs, and how cumulative costs are
// added without overflowing.
//
// The default model charges 1 per forward step and 1000 per 90° turn, so a
// reversal (two turns) costs 2000. The turn penalty being much larger than
// the step cost is what makes long straight runs preferable to detours, but
// the solver never assumes particular values: it only ever consults a Model.
//
// Cumulative costs are unsigned. Unreached is the sentinel for "no route
// known" and Add saturates at it, so no sum can wrap around.
package cost
