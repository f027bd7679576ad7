package server

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahiltalaviya99/portfolio/internal/content"
	"github.com/sahiltalaviya99/portfolio/internal/motion"
	"github.com/sahiltalaviya99/portfolio/internal/nav"
	"github.com/sahiltalaviya99/portfolio/internal/page"
	"github.com/sahiltalaviya99/portfolio/internal/quotes"
	"github.com/sahiltalaviya99/portfolio/internal/theme"
)

func (s *Server) index(c *gin.Context) {
	view, err := page.Build(page.Options{
		Theme:        theme.FromContext(c.Request.Context()),
		ResumePath:   s.cfg.Assets.ResumePath,
		ProfileImage: s.cfg.Assets.ProfileImage,
		Year:         s.clock.Now().Year(),
	})
	if err != nil {
		s.logger.Error("failed to build page", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.HTML(http.StatusOK, "index.html", view)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": s.cfg.Version})
}

func (s *Server) sections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sections":  page.Sections(),
		"links":     nav.Links(nav.SectionIDs),
		"bootstrap": page.NewBootstrap(),
	})
}

func (s *Server) projects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": content.Projects()})
}

type projectResponse struct {
	content.Project
	DetailsHTML string `json:"details_html"`
}

func (s *Server) project(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id must be a number"})
		return
	}
	p, err := content.ProjectByID(id)
	if errors.Is(err, content.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	html, err := content.Markdown(p.Details)
	if err != nil {
		s.logger.Error("failed to render project details", zap.Int("project", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render project"})
		return
	}
	c.JSON(http.StatusOK, projectResponse{Project: p, DetailsHTML: string(html)})
}

func (s *Server) experience(c *gin.Context) {
	category := c.DefaultQuery("category", content.All)
	items, err := content.FilterExperiences(category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category":   category,
		"tabs":       content.ExperienceTabs(),
		"experience": items,
	})
}

type skillResponse struct {
	content.Skill
	Percent int `json:"percent"`
}

func (s *Server) skills(c *gin.Context) {
	category := c.DefaultQuery("category", content.All)
	items, err := content.FilterSkills(category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := make([]skillResponse, 0, len(items))
	for _, sk := range items {
		out = append(out, skillResponse{Skill: sk, Percent: sk.Percent()})
	}
	c.JSON(http.StatusOK, gin.H{
		"category":   category,
		"categories": content.SkillCategories(),
		"skills":     out,
	})
}

func (s *Server) quotes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"quotes":      content.Quotes(),
		"interval_ms": quotes.Interval.Milliseconds(),
	})
}

func (s *Server) getTheme(c *gin.Context) {
	c.JSON(http.StatusOK, s.sessions.Load(c.Request))
}

func (s *Server) toggleTheme(c *gin.Context) {
	s.dispatchTheme(c, theme.ToggleTheme{})
}

type setThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (s *Server) setTheme(c *gin.Context) {
	var req setThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme is required"})
		return
	}
	t, err := theme.Parse(req.Theme)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.dispatchTheme(c, theme.SetTheme{Theme: t})
}

func (s *Server) dispatchTheme(c *gin.Context, a theme.Action) {
	st, err := s.sessions.Dispatch(c.Writer, c.Request, a)
	if err != nil {
		s.logger.Error("failed to save theme", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save theme"})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) motion(c *gin.Context) {
	section := c.Param("section")
	preset, ok := motion.Lookup(section)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "section has no motion preset"})
		return
	}
	p, err := strconv.ParseFloat(c.DefaultQuery("progress", "0"), 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be a number"})
		return
	}
	p = motion.Clamp01(p)
	c.JSON(http.StatusOK, gin.H{
		"section":  section,
		"progress": p,
		"frame":    preset.At(p),
	})
}
