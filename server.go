package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/githubdata"
	"github.com/Zachkp/portfolio/internal/workspace"
)

type server struct {
	cfg     *config.Config
	log     *zap.Logger
	scanner *workspace.Scanner
	github  *githubdata.Store
	mail    mailer
	profile Profile
}

func newScanner(cfg *config.Config, log *zap.Logger) (*workspace.Scanner, error) {
	return workspace.New(cfg.WorkspaceDir,
		workspace.WithExcludes(cfg.WorkspaceExclude),
		workspace.WithHidden(cfg.WorkspaceHidden),
		workspace.WithLogger(log.Named("workspace")),
	)
}

func newServer(cfg *config.Config, log *zap.Logger) (*server, error) {
	scanner, err := newScanner(cfg, log)
	if err != nil {
		return nil, err
	}

	return &server{
		cfg:     cfg,
		log:     log,
		scanner: scanner,
		github:  githubdata.NewStore(cfg.DataDir),
		mail:    newSMTPMailer(cfg),
		profile: newProfile(cfg.AvatarURL, cfg.LinkedInURL, cfg.CVURL),
	}, nil
}

func (s *server) routes(hasher *ipHasher) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(s.log, hasher), recoverJSON(s.log), cors.Default())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Imported GitHub data
	api.GET("/github/profile", s.githubRaw(s.github.Profile))
	api.GET("/github/repos", s.githubRaw(s.github.Repos))
	api.GET("/github/top-languages", s.topLanguages)

	api.GET("/local-projects", s.localProjects)
	api.GET("/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.profile)
	})
	api.POST("/contact", s.contact)

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			notFound(c)
			return
		}
		c.String(http.StatusNotFound, "404 page not found")
	})

	return r
}

func (s *server) githubRaw(read func() (json.RawMessage, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := read()
		if err != nil {
			s.githubError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
	}
}

func (s *server) topLanguages(c *gin.Context) {
	langs, err := s.github.TopLanguages()
	if err != nil {
		s.githubError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username":  s.cfg.GitHubUsername,
		"languages": langs,
	})
}

func (s *server) githubError(c *gin.Context, err error) {
	if errors.Is(err, githubdata.ErrNotImported) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not imported"})
		return
	}
	s.log.Error("reading github data", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// Scans run synchronously on every request; results are never cached.
func (s *server) localProjects(c *gin.Context) {
	res, err := s.scanner.Scan()
	if err != nil {
		s.log.Error("scanning workspace", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *server) contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.mail.Send(req)
	switch {
	case errors.Is(err, errMailNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case err != nil:
		s.log.Error("sending contact email", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
	default:
		s.log.Info("contact email sent", zap.String("from", req.Email))
		c.JSON(http.StatusOK, gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	}
}
