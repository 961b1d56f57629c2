package watchlist

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// List is a YAML file naming the users watch mode should track.
//
//	users:
//	  - someone
//	  - https://www.reddit.com/user/someone-else/
type List struct {
	Users []string `yaml:"users"`
}

// Load reads and parses a watchlist file, dropping blank entries.
func Load(path string) (List, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return List{}, fmt.Errorf("read watchlist: %w", err)
	}
	var l List
	if err := yaml.Unmarshal(b, &l); err != nil {
		return List{}, fmt.Errorf("parse watchlist: %w", err)
	}
	users := make([]string, 0, len(l.Users))
	for _, u := range l.Users {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		users = append(users, u)
	}
	l.Users = users
	return l, nil
}
