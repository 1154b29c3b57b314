package container

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is the session-scoped store. Lines keep their insertion
// order per container so summaries are deterministic. Reads hand out copies;
// the stored records are only ever touched under the lock.
type MemoryRepository struct {
	mu         sync.Mutex
	containers map[string]*Container
	order      []string
	lines      map[string][]*Line
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		containers: make(map[string]*Container),
		lines:      make(map[string][]*Line),
	}
}

func (r *MemoryRepository) Create(container *Container) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if container.ID == "" {
		container.ID = uuid.New().String()
	}
	container.CreatedAt = time.Now()
	stored := *container
	r.containers[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *MemoryRepository) List() ([]*Container, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	containers := make([]*Container, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.containers[id]
		containers = append(containers, &clone)
	}
	return containers, nil
}

func (r *MemoryRepository) Get(id string) (*Container, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	container, ok := r.containers[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *container
	return &clone, nil
}

func (r *MemoryRepository) Rename(id, label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	container, ok := r.containers[id]
	if !ok {
		return ErrNotFound
	}
	container.Label = label
	return nil
}

func (r *MemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.containers[id]; !ok {
		return ErrNotFound
	}
	delete(r.containers, id)
	delete(r.lines, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepository) AddLine(line *Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.containers[line.ContainerID]; !ok {
		return ErrNotFound
	}
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	line.CreatedAt = time.Now()
	stored := *line
	r.lines[stored.ContainerID] = append(r.lines[stored.ContainerID], &stored)
	return nil
}

func (r *MemoryRepository) ListLines(containerID string) ([]*Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.containers[containerID]; !ok {
		return nil, ErrNotFound
	}
	lines := make([]*Line, 0, len(r.lines[containerID]))
	for _, line := range r.lines[containerID] {
		clone := *line
		lines = append(lines, &clone)
	}
	return lines, nil
}

func (r *MemoryRepository) DeleteLine(containerID, lineID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.containers[containerID]; !ok {
		return ErrNotFound
	}
	lines := r.lines[containerID]
	for i, line := range lines {
		if line.ID == lineID {
			r.lines[containerID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}
