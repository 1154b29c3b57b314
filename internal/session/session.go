package session

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Tecosi/voice-container-counter/internal/calc"
	"github.com/Tecosi/voice-container-counter/internal/dictation"
)

// Store is the container collaborator a session dispatches into.
type Store interface {
	CreateContainer(label string) (string, error)
	RenameContainer(id, label string) error
	AddLine(containerID, itemLabel string, quantity float64) error
}

// DefaultConfirmWords are the spoken markers that confirm a segment.
var DefaultConfirmWords = []string{"ok", "okay", "okey", "d'accord", "dac"}

const defaultContainerLabel = "contenant"

var (
	containerWords = map[string]bool{
		"contenant": true,
		"container": true,
		"carton":    true,
		"bac":       true,
	}
	referenceWords = map[string]bool{
		"reference": true,
		"ref":       true,
		"article":   true,
	}
)

// Session accumulates transcript fragments, splits them on a confirmation
// marker and dispatches each confirmed segment. One session owns its buffer
// exclusively; the mutex only guards against the transport reading observers
// while an ingest is in flight.
type Session struct {
	store   Store
	markers *regexp.Regexp

	mu             sync.Mutex
	buffer         string
	activeItem     string
	containerID    string
	containerLabel string
	lastStatus     string
	subtotals      map[string]float64
}

func New(store Store, confirmWords []string) *Session {
	if len(confirmWords) == 0 {
		confirmWords = DefaultConfirmWords
	}
	return &Session{
		store:     store,
		markers:   compileMarkers(confirmWords),
		subtotals: make(map[string]float64),
	}
}

// Longest marker first so "okay" is never split into "ok" + "ay".
func compileMarkers(words []string) *regexp.Regexp {
	sorted := append([]string(nil), words...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Ingest appends a transcript fragment and drains every confirmed segment.
func (s *Session) Ingest(fragment string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fragment = strings.TrimSpace(fragment)
	if fragment != "" {
		if s.buffer == "" {
			s.buffer = fragment
		} else {
			s.buffer += " " + fragment
		}
	}
	s.drain()
}

// Reset clears the buffer, the active reference and the status. The
// container survives a reset so dictation can resume into it.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = ""
	s.activeItem = ""
	s.lastStatus = ""
	s.subtotals = make(map[string]float64)
}

func (s *Session) Buffer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer
}

func (s *Session) ActiveItemLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeItem
}

func (s *Session) ContainerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containerID
}

func (s *Session) LastStatus() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastStatus
}

// CurrentSubtotal returns the session's running total for an item,
// keyed by trimmed lowercase label.
func (s *Session) CurrentSubtotal(itemLabel string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotals[subtotalKey(itemLabel)]
}

func (s *Session) drain() {
	for {
		loc := s.markers.FindStringIndex(s.buffer)
		if loc == nil {
			return
		}
		segment := strings.TrimSpace(s.buffer[:loc[0]])
		s.buffer = strings.TrimSpace(s.buffer[loc[1]:])
		s.dispatch(segment)
	}
}

func (s *Session) dispatch(segment string) {
	if segment == "" {
		s.lastStatus = "segment vide"
		return
	}

	first, rest := cutToken(segment)
	switch key := dictation.Fold(first); {
	case containerWords[key]:
		s.setContainer(rest)
	case referenceWords[key]:
		s.setReference(rest)
	default:
		s.addQuantity(segment)
	}
}

func (s *Session) setContainer(label string) {
	if label == "" {
		label = s.containerLabel
	}
	if label == "" {
		label = defaultContainerLabel
	}

	if s.containerID == "" {
		id, err := s.store.CreateContainer(label)
		if err != nil {
			s.lastStatus = "contenant indisponible: " + err.Error()
			return
		}
		s.containerID = id
	} else if err := s.store.RenameContainer(s.containerID, label); err != nil {
		s.lastStatus = "contenant indisponible: " + err.Error()
		return
	}

	s.containerLabel = label
	s.lastStatus = "contenant actif: " + label
}

func (s *Session) setReference(label string) {
	if label == "" {
		s.lastStatus = "référence vide"
		return
	}
	s.activeItem = label
	s.lastStatus = "référence active: " + label
}

func (s *Session) addQuantity(segment string) {
	if s.activeItem == "" {
		s.lastStatus = "aucune référence active"
		return
	}

	value, err := calc.Evaluate(calc.NormalizeMathSpeech(segment))
	if err != nil {
		s.lastStatus = err.Error()
		return
	}
	if value <= 0 {
		s.lastStatus = "rien ajouté"
		return
	}

	// A confirmed quantity needs a container; create the default one lazily.
	if s.containerID == "" {
		label := s.containerLabel
		if label == "" {
			label = defaultContainerLabel
		}
		id, err := s.store.CreateContainer(label)
		if err != nil {
			s.lastStatus = "contenant indisponible: " + err.Error()
			return
		}
		s.containerID = id
		s.containerLabel = label
	}

	if err := s.store.AddLine(s.containerID, s.activeItem, value); err != nil {
		s.lastStatus = "ajout impossible: " + err.Error()
		return
	}

	s.subtotals[subtotalKey(s.activeItem)] += value
	s.lastStatus = fmt.Sprintf("ajouté: %s x %s", formatQuantity(value), s.activeItem)
}

func subtotalKey(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func cutToken(s string) (first, rest string) {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i:])
	}
	return s, ""
}
