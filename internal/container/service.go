package container

import (
	"errors"
	"math"
	"strings"

	"github.com/Tecosi/voice-container-counter/internal/dictation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Containers
// --------------------------------------------------
func (s *Service) Create(label string) (*Container, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "contenant"
	}

	container := &Container{Label: label}
	if err := s.repo.Create(container); err != nil {
		return nil, err
	}
	return container, nil
}

func (s *Service) List() ([]*Container, error) {
	return s.repo.List()
}

func (s *Service) Get(id string) (*Container, error) {
	return s.repo.Get(id)
}

func (s *Service) Rename(id, label string) (*Container, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, errors.New("missing required fields")
	}
	if err := s.repo.Rename(id, label); err != nil {
		return nil, err
	}
	return s.repo.Get(id)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// --------------------------------------------------
// Lines
// --------------------------------------------------
func (s *Service) CreateLine(containerID, itemLabel string, quantity float64) (*Line, error) {
	itemLabel = strings.TrimSpace(itemLabel)
	if itemLabel == "" {
		return nil, errors.New("missing required fields")
	}
	if quantity <= 0 || math.IsInf(quantity, 0) || math.IsNaN(quantity) {
		return nil, errors.New("quantity must be a positive finite number")
	}

	line := &Line{
		ContainerID: containerID,
		ItemLabel:   itemLabel,
		Quantity:    quantity,
	}
	if err := s.repo.AddLine(line); err != nil {
		return nil, err
	}
	return line, nil
}

func (s *Service) Lines(containerID string) ([]*Line, error) {
	return s.repo.ListLines(containerID)
}

func (s *Service) DeleteLine(containerID, lineID string) error {
	return s.repo.DeleteLine(containerID, lineID)
}

// --------------------------------------------------
// Summary
// --------------------------------------------------
func (s *Service) Summary(containerID string) ([]SummaryLine, error) {
	lines, err := s.repo.ListLines(containerID)
	if err != nil {
		return nil, err
	}
	return Summarize(lines), nil
}

// --------------------------------------------------
// Batch dictation into a container
// --------------------------------------------------
func (s *Service) AddDictation(containerID, text string) ([]*Line, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text is required")
	}
	if _, err := s.repo.Get(containerID); err != nil {
		return nil, err
	}

	parsed := dictation.ParseBatch(text)
	lines := make([]*Line, 0, len(parsed))
	for _, pl := range parsed {
		line, err := s.CreateLine(containerID, pl.ItemLabel, pl.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// --------------------------------------------------
// Streaming session collaborator (session.Store)
// --------------------------------------------------
func (s *Service) CreateContainer(label string) (string, error) {
	container, err := s.Create(label)
	if err != nil {
		return "", err
	}
	return container.ID, nil
}

func (s *Service) RenameContainer(id, label string) error {
	_, err := s.Rename(id, label)
	return err
}

func (s *Service) AddLine(containerID, itemLabel string, quantity float64) error {
	_, err := s.CreateLine(containerID, itemLabel, quantity)
	return err
}
