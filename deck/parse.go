package deck

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

type deckFile struct {
	Slides []map[string]any `json:"slides"`
}

// Load reads the declarative deck description from JSON file.
//
// Unknown slide type tags are recoverable: the entry is kept with the generic
// content type and a warning. A missing or malformed file is a setup error.
func Load(path string, log *zap.Logger) ([]SlideSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read deck file: %w", err)
	}
	return Parse(data, log)
}

// Parse decodes deck description from raw JSON.
func Parse(data []byte, log *zap.Logger) ([]SlideSpec, error) {
	var df deckFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("unable to parse deck file: %w", err)
	}

	specs := make([]SlideSpec, 0, len(df.Slides))
	for i, fields := range df.Slides {
		tag, _ := fields["type"].(string)
		st, err := ParseSlideType(tag)
		if err != nil {
			log.Warn("Unknown slide type, using content",
				zap.Int("slide", i+1), zap.String("type", tag))
			st = SlideTypeContent
		}
		specs = append(specs, SlideSpec{Type: st, Fields: fields})
	}
	return specs, nil
}
