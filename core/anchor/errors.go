package anchor

import "fmt"

// DuplicateIDError reports two anchorable elements sharing the same
// normalized identifier. No rewrite is applied when this is returned;
// the source document must be fixed and the run repeated.
type DuplicateIDError struct {
	// ID is the duplicated identifier in normalized form.
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate anchor identifier %q", e.ID)
}
