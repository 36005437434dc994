// Package githubdata serves GitHub profile and repository data that was
// imported ahead of time into JSON files, and performs that import.
package githubdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/go-github/v57/github"
)

const (
	ProfileFile = "github_profile.json"
	ReposFile   = "github_repos.json"
)

// ErrNotImported is returned when the import step has not written a file yet.
var ErrNotImported = errors.New("not imported")

// LanguageCount is the number of repositories whose primary language is Language.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// Store reads imported data from a directory. Every call reads the file
// again; nothing is cached.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Profile returns the imported user profile as raw JSON.
func (s *Store) Profile() (json.RawMessage, error) {
	return s.readRaw(ProfileFile)
}

// Repos returns the imported repository list as raw JSON.
func (s *Store) Repos() (json.RawMessage, error) {
	return s.readRaw(ReposFile)
}

// TopLanguages counts repositories per primary language, most used first.
// Languages with equal counts keep the order they were first seen in.
func (s *Store) TopLanguages() ([]LanguageCount, error) {
	raw, err := s.read(ReposFile)
	if err != nil {
		return nil, err
	}

	var repos []*github.Repository
	if err := json.Unmarshal(raw, &repos); err != nil {
		return nil, fmt.Errorf("decode %s: %w", ReposFile, err)
	}

	index := map[string]int{}
	langs := []LanguageCount{}
	for _, repo := range repos {
		lang := repo.GetLanguage()
		if lang == "" {
			continue
		}
		i, ok := index[lang]
		if !ok {
			i = len(langs)
			index[lang] = i
			langs = append(langs, LanguageCount{Language: lang})
		}
		langs[i].Count++
	}

	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i].Count > langs[j].Count
	})
	return langs, nil
}

func (s *Store) readRaw(name string) (json.RawMessage, error) {
	raw, err := s.read(name)
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("decode %s: invalid JSON", name)
	}
	return json.RawMessage(raw), nil
}

func (s *Store) read(name string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotImported)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return raw, nil
}
