package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jeduden/textstat/internal/analysis"
	"github.com/jeduden/textstat/internal/inputs"
	"github.com/jeduden/textstat/internal/version"
)

// analyzeRequest is the body accepted by the /v1 endpoints.
type analyzeRequest struct {
	Text     string `json:"text"`
	Top      *int   `json:"top"`
	Markdown bool   `json:"markdown"`
}

func (s *Server) analyze(c echo.Context, endpoint string) (*analysis.Analysis, int, error) {
	var req analyzeRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		// The body limit reader fails reads with its own 413.
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return nil, 0, httpErr
		}
		return nil, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	top := s.config.TopKeywords
	if req.Top != nil {
		if *req.Top < 0 {
			return nil, 0, echo.NewHTTPError(http.StatusBadRequest, "top must be >= 0")
		}
		top = *req.Top
	}

	text := inputs.Text([]byte(req.Text), inputs.TextOptions{
		Markdown:    req.Markdown,
		FrontMatter: req.Markdown && s.config.FrontMatter,
	})
	a := analysis.New(text)
	s.stats.Observe(endpoint, a.WordCount())
	return a, top, nil
}

func (s *Server) handleAnalyze(c echo.Context) error {
	a, top, err := s.analyze(c, "analyze")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a.Report(top))
}

func (s *Server) handleKeywords(c echo.Context) error {
	a, top, err := s.analyze(c, "keywords")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a.TopKeywords(top))
}

func (s *Server) handleLiveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Seconds(),
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}
