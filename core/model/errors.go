package model

import (
	"fmt"
	"strings"
)

// SchemaError reports required instance columns missing from tabular input.
// Loading aborts, no partial model is produced.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("instance schema missing columns: %s", strings.Join(e.Missing, ", "))
}

// MalformedPrecedenceError reports a precedence relation the schedulers
// cannot work with: a reference to a block id absent from the model, or a
// dependency cycle. Both are detected at load time because every downstream
// algorithm assumes a valid DAG.
type MalformedPrecedenceError struct {
	BlockID int   // block whose predecessor list is at fault
	Pred    int   // the unknown predecessor id
	Cycle   []int // ids forming a cycle, when one was found
}

func (e *MalformedPrecedenceError) Error() string {
	if len(e.Cycle) > 0 {
		return fmt.Sprintf("model: precedence cycle involving blocks %v", e.Cycle)
	}
	return fmt.Sprintf("model: block %d references unknown predecessor %d", e.BlockID, e.Pred)
}
