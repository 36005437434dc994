package githubdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-github/v57/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const reposPerPage = 100

// NewClient returns a GitHub client, authenticated when token is non-empty.
// Unauthenticated clients work for public data at a lower rate limit.
func NewClient(ctx context.Context, token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}

// Importer copies a user's public profile and repositories into the
// files read by Store. It is run offline, never while serving requests.
type Importer struct {
	client *github.Client
	dir    string
	log    *zap.Logger
}

func NewImporter(client *github.Client, dir string, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{client: client, dir: dir, log: log}
}

// Import fetches username's profile and repositories, most recently
// updated first, and writes them as indented JSON. Nothing is written
// unless both fetches succeed, so a failed run leaves the previous
// import intact.
func (im *Importer) Import(ctx context.Context, username string) error {
	if username == "" {
		return errors.New("github username not configured")
	}

	user, _, err := im.client.Users.Get(ctx, username)
	if err != nil {
		return fmt.Errorf("fetch profile for %s: %w", username, err)
	}
	repos, err := im.listRepos(ctx, username)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(im.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := im.write(ProfileFile, user); err != nil {
		return err
	}
	if err := im.write(ReposFile, repos); err != nil {
		return err
	}

	im.log.Info("imported github data",
		zap.String("username", username),
		zap.Int("repos", len(repos)),
		zap.String("dir", im.dir),
	)
	return nil
}

func (im *Importer) listRepos(ctx context.Context, username string) ([]*github.Repository, error) {
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: reposPerPage},
	}

	repos := []*github.Repository{}
	for {
		page, resp, err := im.client.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			return nil, fmt.Errorf("list repos for %s: %w", username, err)
		}
		repos = append(repos, page...)
		if resp.NextPage == 0 {
			return repos, nil
		}
		opts.Page = resp.NextPage
	}
}

func (im *Importer) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(im.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
