package chain

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Recipe is a named, reusable encoding pipeline.
type Recipe struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Pipeline    Pipeline `json:"pipeline"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// Store keeps recipes in memory and mirrors them to JSON files in a
// directory when one is configured.
type Store struct {
	recipes map[string]*Recipe
	dir     string
	mu      sync.RWMutex
}

// NewStore creates a recipe store. An empty dir keeps recipes in memory
// only.
func NewStore(dir string) *Store {
	return &Store{
		recipes: make(map[string]*Recipe),
		dir:     dir,
	}
}

// Save stores a recipe, stamping creation and update times.
func (s *Store) Save(recipe *Recipe) error {
	if recipe.Name == "" {
		return fmt.Errorf("recipe name cannot be empty")
	}
	if len(recipe.Pipeline.Steps) == 0 {
		return fmt.Errorf("recipe %s has no pipeline steps", recipe.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	if recipe.CreatedAt == "" {
		recipe.CreatedAt = now
	}
	recipe.UpdatedAt = now

	s.recipes[recipe.Name] = recipe

	if s.dir != "" {
		return s.persist(recipe)
	}
	return nil
}

// Get retrieves a recipe by name.
func (s *Store) Get(name string) (*Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipe, exists := s.recipes[name]
	return recipe, exists
}

// List returns all recipes sorted by name.
func (s *Store) List() []*Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipes := make([]*Recipe, 0, len(s.recipes))
	for _, recipe := range s.recipes {
		recipes = append(recipes, recipe)
	}
	sort.Slice(recipes, func(i, j int) bool {
		return recipes[i].Name < recipes[j].Name
	})
	return recipes
}

// Delete removes a recipe from memory and disk.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.recipes, name)

	if s.dir != "" {
		path := filepath.Join(s.dir, sanitizeFilename(name)+".json")
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete recipe file: %w", err)
		}
	}
	return nil
}

// Load reads every recipe file from the store directory.
func (s *Store) Load() error {
	if s.dir == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create recipes directory: %w", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read recipes directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read recipe %s: %w", entry.Name(), err)
		}

		var recipe Recipe
		if err := json.Unmarshal(data, &recipe); err != nil {
			return fmt.Errorf("failed to parse recipe %s: %w", entry.Name(), err)
		}
		s.recipes[recipe.Name] = &recipe
	}
	return nil
}

func (s *Store) persist(recipe *Recipe) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create recipes directory: %w", err)
	}

	data, err := json.MarshalIndent(recipe, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize recipe: %w", err)
	}

	path := filepath.Join(s.dir, sanitizeFilename(recipe.Name)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write recipe file: %w", err)
	}
	return nil
}

// sanitizeFilename converts a recipe name to a safe filename.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "recipe"
	}
	return b.String()
}
