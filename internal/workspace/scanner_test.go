package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layout creates dir/file entries under root. Keys ending in "/" are
// directories; everything else is an empty file.
func layout(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, nil, 0o644))
	}
}

func scan(t *testing.T, root string, opts ...Option) *Result {
	t.Helper()
	s, err := New(root, opts...)
	require.NoError(t, err)
	res, err := s.Scan()
	require.NoError(t, err)
	return res
}

func byName(res *Result) map[string]Project {
	m := make(map[string]Project, len(res.Projects))
	for _, p := range res.Projects {
		m[p.Name] = p
	}
	return m
}

func TestScan(t *testing.T) {
	t.Run("empty root yields empty list", func(t *testing.T) {
		res := scan(t, t.TempDir())
		assert.Equal(t, 0, res.Count)
		assert.NotNil(t, res.Projects)
		assert.Empty(t, res.Projects)
	})

	t.Run("example workspace", func(t *testing.T) {
		root := t.TempDir()
		layout(t, root,
			"proj-a/package.json",
			"proj-a/README.md",
			"proj-b/.git/",
			"node_modules/package.json",
			"proj-c/requirements.txt",
			"proj-c/Dockerfile",
		)

		res := scan(t, root)
		require.Equal(t, 2, res.Count)
		assert.Equal(t, []string{"proj-a", "proj-c"}, []string{res.Projects[0].Name, res.Projects[1].Name})

		a := res.Projects[0]
		assert.Equal(t, "node", a.Type.String())
		assert.True(t, a.Readme)
		assert.False(t, a.Docker)
		assert.Equal(t, filepath.Join(root, "proj-a"), a.Path)

		c := res.Projects[1]
		assert.Equal(t, "python", c.Type.String())
		assert.True(t, c.Docker)
		assert.False(t, c.Readme)
	})

	t.Run("type accumulation", func(t *testing.T) {
		root := t.TempDir()
		layout(t, root,
			"readme-only/README.md",
			"node-py/requirements.txt",
			"node-py/package.json",
			"maven/pom.xml",
			"maven/Dockerfile",
			"maven/README.md",
			"all/package.json",
			"all/pom.xml",
			"all/requirements.txt",
			"nothing/main.go",
		)

		got := byName(scan(t, root))
		require.Len(t, got, 4)
		assert.NotContains(t, got, "nothing")

		tests := []struct {
			name   string
			typ    string
			docker bool
			readme bool
		}{
			{"readme-only", "unknown", false, true},
			{"node-py", "node|python", false, false},
			{"maven", "java-maven", true, true},
			{"all", "node|java-maven|python", false, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p := got[tt.name]
				assert.Equal(t, tt.typ, p.Type.String())
				assert.Equal(t, tt.docker, p.Docker)
				assert.Equal(t, tt.readme, p.Readme)
			})
		}
	})

	t.Run("excluded directories never appear", func(t *testing.T) {
		root := t.TempDir()
		for _, name := range []string{"node_modules", "target", "dist", "build", ".next", ".cache", ".git"} {
			layout(t, root, name+"/package.json", name+"/README.md")
		}
		layout(t, root, "kept/README.md")

		res := scan(t, root, WithHidden(true))
		require.Equal(t, 1, res.Count)
		assert.Equal(t, "kept", res.Projects[0].Name)
	})

	t.Run("hidden entries skipped by default", func(t *testing.T) {
		root := t.TempDir()
		layout(t, root, ".dotfiles/README.md", "visible/README.md")

		assert.Equal(t, 1, scan(t, root).Count)
		assert.Equal(t, 2, scan(t, root, WithHidden(true)).Count)
	})

	t.Run("plain files at root are ignored", func(t *testing.T) {
		root := t.TempDir()
		layout(t, root, "package.json", "README.md")

		assert.Equal(t, 0, scan(t, root).Count)
	})

	t.Run("custom excludes replace defaults", func(t *testing.T) {
		root := t.TempDir()
		layout(t, root, "dist/package.json", "scratch-1/package.json")

		res := scan(t, root, WithExcludes([]string{"scratch-*"}))
		require.Equal(t, 1, res.Count)
		assert.Equal(t, "dist", res.Projects[0].Name)
	})

	t.Run("symlinked project directories are followed", func(t *testing.T) {
		root := t.TempDir()
		other := t.TempDir()
		layout(t, other, "real/package.json")
		if err := os.Symlink(filepath.Join(other, "real"), filepath.Join(root, "linked")); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}

		res := scan(t, root)
		require.Equal(t, 1, res.Count)
		assert.Equal(t, "linked", res.Projects[0].Name)
	})

	t.Run("idempotent", func(t *testing.T) {
		root := t.TempDir()
		layout(t, root, "a/package.json", "b/pom.xml", "c/README.md")

		assert.Equal(t, scan(t, root), scan(t, root))
	})
}

func TestScanMissingRoot(t *testing.T) {
	t.Run("does not exist", func(t *testing.T) {
		s, err := New(filepath.Join(t.TempDir(), "does-not-exist"))
		require.NoError(t, err)

		res, err := s.Scan()
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Contains(t, err.Error(), "read workspace")
	})

	t.Run("regular file", func(t *testing.T) {
		root := t.TempDir()
		layout(t, root, "notes.txt")
		file := filepath.Join(root, "notes.txt")

		s, err := New(file)
		require.NoError(t, err)

		res, err := s.Scan()
		require.Error(t, err)
		assert.Nil(t, res)
		assert.Contains(t, err.Error(), file)
	})
}

// vanishingFS fails the first ReadDir calls the way billy's osfs does
// when a child is removed between readdir and lstat.
type vanishingFS struct {
	billy.Filesystem
	failures int
	calls    int
	errPath  string
}

func (f *vanishingFS) ReadDir(path string) ([]os.FileInfo, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, &os.PathError{Op: "lstat", Path: f.errPath, Err: os.ErrNotExist}
	}
	return f.Filesystem.ReadDir(path)
}

func TestScanToleratesVanishingEntries(t *testing.T) {
	root := t.TempDir()
	layout(t, root, "app/package.json", "lib/README.md")

	t.Run("child removed mid-listing", func(t *testing.T) {
		fs := &vanishingFS{
			Filesystem: osfs.New(root),
			failures:   1,
			errPath:    filepath.Join(root, "tmp83"),
		}

		res := scan(t, root, WithFilesystem(fs))
		assert.Equal(t, 2, res.Count)
		assert.Equal(t, 2, fs.calls)
	})

	t.Run("root failure is not retried", func(t *testing.T) {
		fs := &vanishingFS{
			Filesystem: osfs.New(root),
			failures:   1,
			errPath:    root,
		}

		s, err := New(root, WithFilesystem(fs))
		require.NoError(t, err)
		_, err = s.Scan()
		assert.Error(t, err)
		assert.Equal(t, 1, fs.calls)
	})

	t.Run("os listing survives concurrent churn", func(t *testing.T) {
		s, err := New(root)
		require.NoError(t, err)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 500; i++ {
				dir := filepath.Join(root, fmt.Sprintf("tmp%d", i))
				_ = os.Mkdir(dir, 0o755)
				_ = os.Remove(dir)
			}
		}()

		for i := 0; i < 500; i++ {
			res, err := s.Scan()
			require.NoError(t, err)
			require.Equal(t, 2, res.Count)
		}
		<-done
	})
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New(t.TempDir(), WithExcludes([]string{"[unclosed"}))
	assert.Error(t, err)
}

func TestNewDefaultsToWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	s, err := New("")
	require.NoError(t, err)
	assert.Equal(t, wd, s.Root())
}

// flakyFS fails Stat for selected paths with a non-NotExist error.
type flakyFS struct {
	billy.Filesystem
	fail map[string]bool
}

func (f flakyFS) Stat(name string) (os.FileInfo, error) {
	if f.fail[filepath.ToSlash(name)] {
		return nil, &os.PathError{Op: "stat", Path: name, Err: errors.New("permission denied")}
	}
	return f.Filesystem.Stat(name)
}

func TestScanAbsorbsStatErrors(t *testing.T) {
	root := t.TempDir()
	layout(t, root,
		"locked/package.json",
		"partial/package.json",
		"partial/README.md",
	)

	fs := flakyFS{
		Filesystem: osfs.New(root),
		fail: map[string]bool{
			"locked":                true,
			"partial/package.json": true,
		},
	}

	res := scan(t, root, WithFilesystem(fs))
	require.Equal(t, 1, res.Count)

	p := res.Projects[0]
	assert.Equal(t, "partial", p.Name)
	assert.Equal(t, "unknown", p.Type.String())
	assert.True(t, p.Readme)
}

func TestProjectJSON(t *testing.T) {
	t.Run("docker omitted unless set", func(t *testing.T) {
		b, err := json.Marshal(Project{Name: "x", Path: "/w/x", Readme: true})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"x","path":"/w/x","type":"unknown","readme":true}`, string(b))
	})

	t.Run("combined type", func(t *testing.T) {
		p := Project{Name: "y", Path: "/w/y", Docker: true}
		p.Type = p.Type.Add(Python).Add(Node)
		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"y","path":"/w/y","type":"node|python","docker":true,"readme":false}`, string(b))
	})
}

func TestEcosystems(t *testing.T) {
	var s Ecosystems
	assert.Equal(t, "unknown", s.String())
	assert.Empty(t, s.Tags())

	s = s.Add(JavaMaven).Add(JavaMaven)
	assert.Equal(t, []string{"java-maven"}, s.Tags())
	assert.True(t, s.Has(JavaMaven))
	assert.False(t, s.Has(Node))

	assert.Equal(t, "python", Python.String())
}
