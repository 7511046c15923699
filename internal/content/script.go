package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Script is the text shown on every screen besides the No-button captions.
type Script struct {
	Question    string      `json:"question"`
	Affirmative string      `json:"affirmative"`
	Celebration Celebration `json:"celebration"`
	Letter      Letter      `json:"letter"`
}

// Celebration is the text under the slideshow.
type Celebration struct {
	Title    string   `json:"title"`
	Lines    []string `json:"lines"`
	Continue string   `json:"continue"`
}

// Letter is the closing message.
type Letter struct {
	Greeting   string   `json:"greeting"`
	Paragraphs []string `json:"paragraphs"`
	Closing    string   `json:"closing"`
}

// LoadScript parses a Script from JSON bytes.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

func (s *Script) validate() error {
	var errs []error
	required := []struct{ name, value string }{
		{"question", s.Question},
		{"affirmative", s.Affirmative},
		{"celebration.title", s.Celebration.Title},
		{"celebration.continue", s.Celebration.Continue},
		{"letter.greeting", s.Letter.Greeting},
		{"letter.closing", s.Letter.Closing},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%s is empty", f.name))
		}
	}
	if len(s.Letter.Paragraphs) == 0 {
		errs = append(errs, errors.New("letter has no paragraphs"))
	}
	for i, p := range s.Letter.Paragraphs {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("letter paragraph %d is empty", i))
		}
	}
	return errors.Join(errs...)
}
