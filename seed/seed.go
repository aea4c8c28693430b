// Package seed supplies the startup catalog, stock levels, and demo accounts.
// The default data set is embedded; a deployment can point SEED_FILE at its
// own YAML file instead.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	models "furniture-store/model"
	"furniture-store/service"
)

//go:embed catalog.yaml
var defaultSeed []byte

type File struct {
	Items []Item    `yaml:"items"`
	Users []Account `yaml:"users"`
}

type Item struct {
	ID          int64   `yaml:"id"`
	Title       string  `yaml:"title"`
	Category    string  `yaml:"category"`
	Price       float64 `yaml:"price"`
	Height      int     `yaml:"height"`
	Width       int     `yaml:"width"`
	Weight      float64 `yaml:"weight"`
	Description string  `yaml:"description"`
	Quantity    int     `yaml:"quantity"`

	Material        string `yaml:"material"`
	SeatingCapacity int    `yaml:"seating_capacity"`
	PillowCount     int    `yaml:"pillow_count"`
	WithMirror      bool   `yaml:"with_mirror"`
}

type Account struct {
	Email    string `yaml:"email"`
	Username string `yaml:"username"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password"`
	Address  string `yaml:"address"`
	Phone    string `yaml:"phone"`
}

// Load parses the seed file at path, or the embedded default when path is
// empty.
func Load(path string) (File, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return File{}, fmt.Errorf("read seed file: %w", err)
		}
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}
	return f, nil
}

// Apply loads the catalog into the inventory and registers the demo accounts
// through the regular service operations.
func Apply(f File, svc service.ServiceInterface) error {
	for _, it := range f.Items {
		item := models.CatalogItem{
			ID:              it.ID,
			Title:           it.Title,
			Category:        models.Category(it.Category),
			Price:           it.Price,
			Height:          it.Height,
			Width:           it.Width,
			Weight:          it.Weight,
			Description:     it.Description,
			Material:        it.Material,
			SeatingCapacity: it.SeatingCapacity,
			PillowCount:     it.PillowCount,
			WithMirror:      it.WithMirror,
		}
		if err := svc.AddStock(item, it.Quantity); err != nil {
			return fmt.Errorf("seed item %d: %w", it.ID, err)
		}
	}
	for _, u := range f.Users {
		if err := svc.SignUp(u.Username, u.FullName, u.Email, u.Password, u.Address, u.Phone); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	return nil
}
