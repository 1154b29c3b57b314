package container

import "time"

type Container struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

type Line struct {
	ID          string    `json:"id"`
	ContainerID string    `json:"container_id"`
	ItemLabel   string    `json:"item_label"`
	Quantity    float64   `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

type SummaryLine struct {
	ItemLabel     string  `json:"item_label"`
	TotalQuantity float64 `json:"total_quantity"`
}
