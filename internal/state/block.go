package state

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Block is the record shared with the template and AI panels. The canvas
// never looks inside Data.
type Block struct {
	ID          string         `json:"id" validate:"required"`
	Type        string         `json:"type" validate:"required"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Position    Point          `json:"position"`
	Data        map[string]any `json:"data,omitempty"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the required fields of a block.
func (b Block) Validate() error {
	if err := Validator().Struct(b); err != nil {
		return fmt.Errorf("invalid block %q: %w", b.ID, err)
	}
	return nil
}
