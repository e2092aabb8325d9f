// Package seed fills the catalog and demo users from a YAML fixture.
package seed

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidFixture = errors.New("invalid fixture")

type Fixture struct {
	SupplementTypes []SupplementType `yaml:"supplement_types"`
	Supplements     []Supplement     `yaml:"supplements"`
	Drinks          []Drink          `yaml:"drinks"`
	Users           []User           `yaml:"users"`
}

type SupplementType struct {
	Name string `yaml:"name"`
}

type Supplement struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
	Type  string  `yaml:"type"`
}

type Drink struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
}

type User struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	f := &Fixture{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks prices and that each supplement names a declared type.
func (f *Fixture) Validate() error {
	types := make(map[string]bool, len(f.SupplementTypes))
	for _, st := range f.SupplementTypes {
		if st.Name == "" {
			return fmt.Errorf("%w: supplement type without name", ErrInvalidFixture)
		}
		types[st.Name] = true
	}

	for _, s := range f.Supplements {
		if s.Name == "" {
			return fmt.Errorf("%w: supplement without name", ErrInvalidFixture)
		}
		if s.Price < 0 {
			return fmt.Errorf("%w: supplement %q has negative price", ErrInvalidFixture, s.Name)
		}
		if !types[s.Type] {
			return fmt.Errorf("%w: supplement %q references unknown type %q", ErrInvalidFixture, s.Name, s.Type)
		}
	}

	for _, d := range f.Drinks {
		if d.Name == "" {
			return fmt.Errorf("%w: drink without name", ErrInvalidFixture)
		}
		if d.Price < 0 {
			return fmt.Errorf("%w: drink %q has negative price", ErrInvalidFixture, d.Name)
		}
	}

	for _, u := range f.Users {
		if u.Email == "" || u.Password == "" {
			return fmt.Errorf("%w: user %q needs email and password", ErrInvalidFixture, u.Username)
		}
	}
	return nil
}
