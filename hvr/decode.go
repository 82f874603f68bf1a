package hvr

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode converts a value returned by Do or an endpoint method into out,
// matching struct fields by their json tags.
//
//	var ev struct {
//		Job        string `json:"job"`
//		PostedEvID string `json:"posted_ev_id"`
//	}
//	if err := hvr.Decode(result, &ev); err != nil { ... }
func Decode(result any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(result); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	return nil
}
