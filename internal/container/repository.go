package container

import "errors"

var (
	ErrNotFound     = errors.New("container not found")
	ErrLineNotFound = errors.New("line not found")
)

type Repository interface {
	// containers
	Create(container *Container) error
	List() ([]*Container, error)
	Get(id string) (*Container, error)
	Rename(id, label string) error
	Delete(id string) error

	// lines
	AddLine(line *Line) error
	ListLines(containerID string) ([]*Line, error)
	DeleteLine(containerID, lineID string) error
}
