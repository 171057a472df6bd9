package wirepath

import "fmt"

// ConfigurationError reports an invalid geometric parameter. It is raised
// before any geometry is built and always names the offending parameter;
// it is never corrected silently because it reflects an invalid physical
// design rather than a numerical artifact.
type ConfigurationError struct {
	Param  string
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Param, e.Detail)
}

// configErr builds a ConfigurationError for the named parameter.
func configErr(param, format string, args ...any) error {
	return &ConfigurationError{Param: param, Detail: fmt.Sprintf(format, args...)}
}

// InvariantViolation reports a failed post-build frame check. It indicates
// a defect in frame propagation, not a user input problem, and carries the
// full validation report so tests can assert on the individual findings.
type InvariantViolation struct {
	Detail string
	Report Report
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("frame invariant violated: %s (%d errors, %d warnings)",
		e.Detail, len(e.Report.Errors), len(e.Report.Warnings))
}
