package service

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// Lead is one captured request, stored as a single JSON line.
// The file is a stand-in for a future mail/Telegram notification hook.
type Lead struct {
	TS      string `json:"ts"`
	Product string `json:"product"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Message string `json:"message"`
}

// LeadService appends captured leads to a local newline-delimited JSON file.
type LeadService struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewLeadService returns a LeadService writing to the given path.
func NewLeadService(path string) *LeadService {
	return &LeadService{path: path, now: time.Now}
}

// Append timestamps the lead and writes exactly one JSON line.
func (s *LeadService) Append(product, name, contact, message string) error {
	lead := Lead{
		TS:      s.now().UTC().Format(time.RFC3339),
		Product: product,
		Name:    name,
		Contact: contact,
		Message: message,
	}

	line, err := json.Marshal(lead)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}
