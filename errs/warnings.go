package errs

import "strings"

// Warnings is a list of non-fatal errors.
type Warnings []error

// Append appends the non-nil errors to the list.
func (w Warnings) Append(errs ...error) Warnings {
	for _, err := range errs {
		if err != nil {
			w = append(w, err)
		}
	}

	return w
}

// Return returns nil if the list is empty, otherwise the list itself.
func (w Warnings) Return() error {
	if len(w) == 0 {
		return nil
	}

	return w
}

func (w Warnings) Error() string {
	if len(w) == 1 {
		return w[0].Error()
	}

	var b strings.Builder
	b.WriteString("multiple warnings:")
	for _, err := range w {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}

	return b.String()
}

// Unwrap exposes the individual warnings to errors.Is and errors.As.
func (w Warnings) Unwrap() []error {
	return w
}
