// Package workspace scans a directory of local checkouts and classifies
// each immediate child directory by the marker files it contains.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/zap"
)

// DefaultExcludes are matched against each entry's path relative to the root.
var DefaultExcludes = []string{
	"**/node_modules/**",
	"**/.git/**",
	"**/target/**",
	"**/dist/**",
	"**/build/**",
	"**/.next/**",
	"**/.cache/**",
}

// Project is the metadata record reported for one retained directory.
type Project struct {
	Name   string     `json:"name"`
	Path   string     `json:"path"`
	Type   Ecosystems `json:"type"`
	Docker bool       `json:"docker,omitempty"`
	Readme bool       `json:"readme"`
}

// Result is a complete scan of the workspace root.
type Result struct {
	Root     string    `json:"root"`
	Count    int       `json:"count"`
	Projects []Project `json:"projects"`
}

type marker struct {
	file  string
	apply func(*Project)
}

// Checked in this order, so combined types read node|java-maven|python.
var markers = []marker{
	{"package.json", func(p *Project) { p.Type = p.Type.Add(Node) }},
	{"pom.xml", func(p *Project) { p.Type = p.Type.Add(JavaMaven) }},
	{"requirements.txt", func(p *Project) { p.Type = p.Type.Add(Python) }},
	{"Dockerfile", func(p *Project) { p.Docker = true }},
	{"README.md", func(p *Project) { p.Readme = true }},
}

// Scanner lists candidate projects under a root directory. It holds no
// state between scans and is safe for concurrent use.
type Scanner struct {
	root     string
	fs       billy.Filesystem
	osRoot   bool
	excludes []string
	hidden   bool
	log      *zap.Logger
}

type Option func(*Scanner)

// WithFilesystem reads through fs instead of the OS filesystem rooted at
// the scan root. Paths passed to fs are relative to the root.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(s *Scanner) { s.fs = fs }
}

func WithExcludes(patterns []string) Option {
	return func(s *Scanner) { s.excludes = patterns }
}

// WithHidden includes entries whose names start with a dot.
func WithHidden(hidden bool) Option {
	return func(s *Scanner) { s.hidden = hidden }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Scanner) { s.log = log }
}

// New returns a scanner for root. An empty root means the working directory.
func New(root string, opts ...Option) (*Scanner, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root %q: %w", root, err)
	}

	s := &Scanner{
		root:     abs,
		excludes: DefaultExcludes,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = osfs.New(abs)
		s.osRoot = true
	}

	for _, p := range s.excludes {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	return s, nil
}

// Root is the absolute path being scanned.
func (s *Scanner) Root() string {
	return s.root
}

// Scan lists the root and returns every child directory holding at least
// one marker file, sorted by name. Only a failure to list the root itself
// is returned as an error; unreadable entries and markers are treated as
// absent.
func (s *Scanner) Scan() (*Result, error) {
	names, err := s.list()
	if err != nil {
		return nil, fmt.Errorf("read workspace %s: %w", s.root, err)
	}

	projects := make([]Project, 0, len(names))
	for _, name := range names {
		if !s.candidate(name) {
			continue
		}

		// Stat follows symlinks; a vanished entry fails here and is skipped.
		info, err := s.fs.Stat(name)
		if err != nil {
			s.log.Debug("skipping unreadable entry", zap.String("name", name), zap.Error(err))
			continue
		}
		if !info.IsDir() {
			continue
		}

		if p, ok := s.inspect(name); ok {
			projects = append(projects, p)
		}
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})

	return &Result{
		Root:     s.root,
		Count:    len(projects),
		Projects: projects,
	}, nil
}

// listAttempts bounds re-listing when a billy ReadDir fails on a child
// that disappeared mid-listing.
const listAttempts = 3

// list returns the names of the root's entries. Listing names never stats
// the children, so only a failure on the root itself is an error.
func (s *Scanner) list() ([]string, error) {
	if s.osRoot {
		f, err := os.Open(s.root)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return f.Readdirnames(-1)
	}

	// billy's ReadDir stats every child and fails the whole listing if one
	// of them is gone.
	var err error
	for attempt := 0; attempt < listAttempts; attempt++ {
		var infos []os.FileInfo
		infos, err = s.fs.ReadDir(".")
		if err == nil {
			names := make([]string, len(infos))
			for i, info := range infos {
				names[i] = info.Name()
			}
			return names, nil
		}
		if !s.childError(err) {
			return nil, err
		}
		s.log.Debug("entry vanished while listing, retrying", zap.Error(err))
	}
	return nil, err
}

// childError reports whether err names a path below the root rather than
// the root itself.
func (s *Scanner) childError(err error) bool {
	var pe *fs.PathError
	if !errors.As(err, &pe) {
		return false
	}
	p := filepath.Clean(pe.Path)
	return p != "." && p != s.root && p != string(filepath.Separator)
}

func (s *Scanner) candidate(name string) bool {
	if !s.hidden && strings.HasPrefix(name, ".") {
		return false
	}
	// Directories are tested with and without a trailing separator so
	// "**/x/**" excludes x itself.
	for _, p := range s.excludes {
		if doublestar.MatchUnvalidated(p, name) || doublestar.MatchUnvalidated(p, name+"/") {
			s.log.Debug("excluded entry", zap.String("name", name), zap.String("pattern", p))
			return false
		}
	}
	return true
}

func (s *Scanner) inspect(name string) (Project, bool) {
	p := Project{
		Name: name,
		Path: filepath.Join(s.root, name),
	}

	found := false
	for _, m := range markers {
		if s.exists(s.fs.Join(name, m.file)) {
			m.apply(&p)
			found = true
		}
	}
	return p, found
}

// exists reports false for any stat error, not only "not exist".
func (s *Scanner) exists(path string) bool {
	_, err := s.fs.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		s.log.Debug("marker check failed", zap.String("path", path), zap.Error(err))
	}
	return err == nil
}
