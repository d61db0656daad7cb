// Package seed reads the menu and the delivery staff pool from a YAML file.
//
// Example file:
//
//	dishes:
//	  - number: 1
//	    name: Pad Thai
//	    type: Pad Thai
//	    price: "58"
//	    tags: [chicken, rice]
//	agents:
//	  - phone: "+972542562628"
//	    name: Avi
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"go.yaml.in/yaml/v3"
)

// File is the decoded seed document.
type File struct {
	Dishes []Dish  `yaml:"dishes"`
	Agents []Agent `yaml:"agents"`
}

// Dish is one menu entry.
type Dish struct {
	Number int64    `yaml:"number"`
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Price  string   `yaml:"price"`
	Tags   []string `yaml:"tags"`
}

// Agent is one member of the delivery staff.
type Agent struct {
	Phone string `yaml:"phone"`
	Name  string `yaml:"name"`
}

// Load reads and decodes the seed file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &f, nil
}

// Command converts the file into a SeedCatalogCommand. Dish numbers and names
// must be unique within the file.
func (f *File) Command() (commands.SeedCatalogCommand, error) {
	dishes, err := f.dishes()
	if err != nil {
		return commands.SeedCatalogCommand{}, err
	}
	agents, err := f.agents()
	if err != nil {
		return commands.SeedCatalogCommand{}, err
	}
	return commands.NewSeedCatalogCommand(dishes, agents)
}

func (f *File) dishes() ([]*catalog.Dish, error) {
	numbers := make(map[int64]bool, len(f.Dishes))
	names := make(map[string]bool, len(f.Dishes))

	out := make([]*catalog.Dish, 0, len(f.Dishes))
	for i, d := range f.Dishes {
		if numbers[d.Number] || names[d.Name] {
			return nil, errs.NewValueIsInvalidErrorWithCause("dishes",
				fmt.Errorf("entry %d duplicates number %d or name %q", i, d.Number, d.Name))
		}
		numbers[d.Number] = true
		names[d.Name] = true

		amount, err := decimal.NewFromString(d.Price)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("dish %q: %w", d.Name, err))
		}
		price, err := kernel.NewPrice(amount)
		if err != nil {
			return nil, err
		}
		tags, err := catalog.ParseTags(d.Tags)
		if err != nil {
			return nil, fmt.Errorf("dish %q: %w", d.Name, err)
		}
		dish, err := catalog.NewDish(d.Number, d.Name, d.Type, price, tags)
		if err != nil {
			return nil, fmt.Errorf("dish %q: %w", d.Name, err)
		}
		out = append(out, dish)
	}
	return out, nil
}

func (f *File) agents() ([]*agent.Agent, error) {
	out := make([]*agent.Agent, 0, len(f.Agents))
	for _, a := range f.Agents {
		phone, err := kernel.NewPhone(a.Phone)
		if err != nil {
			return nil, fmt.Errorf("agent %q: %w", a.Name, err)
		}
		created, err := agent.NewAgent(phone, a.Name)
		if err != nil {
			return nil, fmt.Errorf("agent %q: %w", a.Name, err)
		}
		out = append(out, created)
	}
	return out, nil
}
