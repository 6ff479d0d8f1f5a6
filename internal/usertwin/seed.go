package usertwin

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vcrobe/userwidgets/userapi"
)

// DefaultUsers mirrors the first records of the public placeholder API.
var DefaultUsers = []userapi.User{
	{ID: 1, Name: "Leanne Graham"},
	{ID: 2, Name: "Ervin Howell"},
	{ID: 3, Name: "Clementine Bauch"},
	{ID: 4, Name: "Patricia Lebsack"},
	{ID: 5, Name: "Chelsey Dietrich"},
}

type seedUser struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type seedFile struct {
	Users []seedUser `yaml:"users"`
}

// LoadSeed reads a YAML seed file of the form:
//
//	users:
//	  - id: 1
//	    name: Cat Burns
func LoadSeed(path string) ([]userapi.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed %s: %w", path, err)
	}
	return ParseSeed(data)
}

// ParseSeed parses seed YAML. Ids must be positive and unique.
func ParseSeed(data []byte) ([]userapi.User, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}

	seen := make(map[int]bool, len(f.Users))
	users := make([]userapi.User, 0, len(f.Users))
	for i, u := range f.Users {
		if u.ID <= 0 {
			return nil, fmt.Errorf("seed user %d: id must be positive", i)
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("seed user %d: duplicate id %d", i, u.ID)
		}
		seen[u.ID] = true
		users = append(users, userapi.User{ID: u.ID, Name: u.Name})
	}
	return users, nil
}
