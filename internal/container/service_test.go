package container

import (
	"errors"
	"math"
	"testing"
)

func TestCreate_DefaultLabel(t *testing.T) {
	service := NewService(NewMemoryRepository())

	container, err := service.Create("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if container.ID == "" {
		t.Error("expected ID to be set")
	}
	if container.Label != "contenant" {
		t.Errorf("label = %q, want %q", container.Label, "contenant")
	}
}

func TestCreateLine_Validation(t *testing.T) {
	service := NewService(NewMemoryRepository())
	container, _ := service.Create("atelier")

	cases := []struct {
		name     string
		label    string
		quantity float64
	}{
		{"blank label", "   ", 5},
		{"zero quantity", "vis", 0},
		{"negative quantity", "vis", -3},
		{"infinite quantity", "vis", math.Inf(1)},
		{"nan quantity", "vis", math.NaN()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.CreateLine(container.ID, tc.label, tc.quantity); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCreateLine_UnknownContainer(t *testing.T) {
	service := NewService(NewMemoryRepository())

	_, err := service.CreateLine("missing", "vis", 5)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSummary(t *testing.T) {
	service := NewService(NewMemoryRepository())
	container, _ := service.Create("atelier")

	service.CreateLine(container.ID, "M6x20", 10)
	service.CreateLine(container.ID, "M8x30", 3)
	service.CreateLine(container.ID, "M6x20", 5)

	summary, err := service.Summary(container.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("expected 2 summary lines, got %d", len(summary))
	}
	if summary[0].ItemLabel != "M6x20" || summary[0].TotalQuantity != 15 {
		t.Errorf("first summary line = %+v", summary[0])
	}
	if summary[1].ItemLabel != "M8x30" || summary[1].TotalQuantity != 3 {
		t.Errorf("second summary line = %+v", summary[1])
	}
}

func TestSummarize_FrenchCollation(t *testing.T) {
	lines := []*Line{
		{ItemLabel: "vis", Quantity: 1},
		{ItemLabel: "écrou", Quantity: 2},
	}

	summary := Summarize(lines)
	if len(summary) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(summary))
	}
	// Byte order would put "vis" first; French collation sorts "écrou" with "e".
	if summary[0].ItemLabel != "écrou" {
		t.Errorf("first label = %q, want %q", summary[0].ItemLabel, "écrou")
	}
}

func TestSummarize_OrderIndependentSums(t *testing.T) {
	forward := []*Line{
		{ItemLabel: "a", Quantity: 1},
		{ItemLabel: "b", Quantity: 2},
		{ItemLabel: "a", Quantity: 3},
	}
	backward := []*Line{forward[2], forward[1], forward[0]}

	got1 := Summarize(forward)
	got2 := Summarize(backward)
	if len(got1) != len(got2) {
		t.Fatalf("length mismatch: %d != %d", len(got1), len(got2))
	}
	for i := range got1 {
		if got1[i] != got2[i] {
			t.Errorf("summary differs at %d: %+v != %+v", i, got1[i], got2[i])
		}
	}
}

func TestAddDictation(t *testing.T) {
	service := NewService(NewMemoryRepository())
	container, _ := service.Create("atelier")

	lines, err := service.AddDictation(container.ID, "10 vis M 6 x 20, 5 écrous M8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	summary, _ := service.Summary(container.ID)
	if len(summary) != 2 {
		t.Errorf("expected 2 summary lines, got %d", len(summary))
	}
}

func TestAddDictation_BlankText(t *testing.T) {
	service := NewService(NewMemoryRepository())
	container, _ := service.Create("atelier")

	if _, err := service.AddDictation(container.ID, "  "); err == nil {
		t.Error("expected error for blank text")
	}
}

func TestRenameAndDelete(t *testing.T) {
	service := NewService(NewMemoryRepository())
	container, _ := service.Create("atelier")

	renamed, err := service.Rename(container.ID, "réserve")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renamed.Label != "réserve" {
		t.Errorf("label = %q, want %q", renamed.Label, "réserve")
	}

	if _, err := service.Rename(container.ID, "  "); err == nil {
		t.Error("expected error for blank label")
	}

	if err := service.Delete(container.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Get(container.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteLine(t *testing.T) {
	service := NewService(NewMemoryRepository())
	container, _ := service.Create("atelier")
	line, _ := service.CreateLine(container.ID, "vis", 5)

	if err := service.DeleteLine(container.ID, line.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.DeleteLine(container.ID, line.ID); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("error = %v, want ErrLineNotFound", err)
	}
}

func TestStoreMethods_ForStreamingSession(t *testing.T) {
	service := NewService(NewMemoryRepository())

	id, err := service.CreateContainer("bac rouge")
	if err != nil || id == "" {
		t.Fatalf("CreateContainer = (%q, %v)", id, err)
	}
	if err := service.RenameContainer(id, "bac bleu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.AddLine(id, "vis M6x20", 15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, _ := service.Summary(id)
	if len(summary) != 1 || summary[0].TotalQuantity != 15 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}
