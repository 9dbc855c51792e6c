package reporting

import (
	"errors"
	"fmt"

	"github.com/acarl005/stripansi"
)

// DiagnosticFormatter is implemented by failure payloads that render their
// own diagnostic text
type DiagnosticFormatter interface {
	FormatDiagnostic() (string, error)
}

// FormatDiagnostic renders a failure payload as plain text. It never fails:
// if the payload cannot be rendered, a placeholder describing the problem is
// returned instead so one bad record does not take down a whole report.
func FormatDiagnostic(err error) (text string) {
	if err == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			text = diagnosticPlaceholder(fmt.Errorf("%v", r))
		}
	}()

	var formatter DiagnosticFormatter
	if errors.As(err, &formatter) {
		s, ferr := formatter.FormatDiagnostic()
		if ferr != nil {
			return diagnosticPlaceholder(ferr)
		}
		return stripansi.Strip(s)
	}
	return stripansi.Strip(err.Error())
}

func diagnosticPlaceholder(cause error) string {
	return fmt.Sprintf("<failed to format diagnostic: %v>", cause)
}
