package simulation

import "fmt"

// ConfigError reports an input constraint violation. It is returned before
// any sampling begins; a run never produces partial output on bad input.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// LimitError reports a request whose path matrix would exceed the engine's
// memory bound. It is returned before any allocation happens.
type LimitError struct {
	Cells int
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("simulation too large: %d matrix cells requested, limit is %d (reduce num_simulations or horizon_years)", e.Cells, e.Limit)
}

// AnomalyError reports a non-finite balance produced during path
// generation. This indicates a defect in the return/fee model for the given
// inputs; the engine aborts the run rather than substituting a value.
type AnomalyError struct {
	Path  int
	Month int
	Value float64
}

func (e *AnomalyError) Error() string {
	return fmt.Sprintf("numerical anomaly: path %d month %d produced non-finite balance %v", e.Path, e.Month, e.Value)
}
