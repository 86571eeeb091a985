package domain

import "testing"

func TestDefaultTaskRegistryContents(t *testing.T) {
	reg := DefaultTaskRegistry()

	wantOrder := []string{"formal", "bullet", "summarize"}
	names := reg.Names()
	if len(names) != len(wantOrder) {
		t.Fatalf("Names() = %v, want %v", names, wantOrder)
	}
	for i, name := range wantOrder {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}

	wantTokens := map[string]int{"formal": 500, "bullet": 500, "summarize": 300}
	for name, tokens := range wantTokens {
		task, ok := reg.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", name)
		}
		if task.MaxTokens != tokens {
			t.Errorf("%s MaxTokens = %d, want %d", name, task.MaxTokens, tokens)
		}
		if task.Temperature != 0.7 {
			t.Errorf("%s Temperature = %v, want 0.7", name, task.Temperature)
		}
		if task.Instruction == "" {
			t.Errorf("%s has empty instruction", name)
		}
	}
}

func TestTaskRegistryLookupUnknown(t *testing.T) {
	reg := DefaultTaskRegistry()
	if _, ok := reg.Lookup("nonexistent"); ok {
		t.Fatal("Lookup(nonexistent) = ok, want not found")
	}
}

func TestNewTaskRegistryIgnoresDuplicates(t *testing.T) {
	reg := NewTaskRegistry(
		TaskConfig{Name: "a", MaxTokens: 100},
		TaskConfig{Name: "a", MaxTokens: 200},
	)
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
	task, _ := reg.Lookup("a")
	if task.MaxTokens != 100 {
		t.Errorf("first registration should win, got MaxTokens = %d", task.MaxTokens)
	}
}
