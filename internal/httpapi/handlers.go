package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/kamrah334/FreeSEOToolkit/internal/density"
	"github.com/kamrah334/FreeSEOToolkit/internal/detect"
	"github.com/kamrah334/FreeSEOToolkit/internal/textkit"
)

type analyzeRequest struct {
	Content string `json:"content" binding:"required"`
}

type textStats struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
	Sentences  int `json:"sentences"`
}

type keywordEntry struct {
	Word      string  `json:"word"`
	Frequency int     `json:"frequency"`
	Density   float64 `json:"density"`
	Tier      string  `json:"tier"`
}

type densityResponse struct {
	AnalysisID     string         `json:"analysis_id"`
	Stats          textStats      `json:"stats"`
	TotalWords     int            `json:"total_words"`
	UniqueKeywords int            `json:"unique_keywords"`
	TopKeywords    []keywordEntry `json:"top_keywords"`
	AverageDensity float64        `json:"average_density"`
	TopDensity     float64        `json:"top_density"`
}

type detectResponse struct {
	AnalysisID      string    `json:"analysis_id"`
	Stats           textStats `json:"stats"`
	Language        string    `json:"language"`
	LanguageWarning string    `json:"language_warning,omitempty"`
	detect.Result
}

// bindContent parses and validates the shared request shape, writing the 400
// response itself on failure.
func (s *Server) bindContent(c *gin.Context) (string, bool) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return "", false
	}
	if n := len([]rune(req.Content)); n < s.cfg.MinContentLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("content must be at least %d characters, got %d", s.cfg.MinContentLength, n),
		})
		return "", false
	}
	return req.Content, true
}

func (s *Server) handleDensity(c *gin.Context) {
	content, ok := s.bindContent(c)
	if !ok {
		return
	}

	id := uuid.NewString()
	report := s.engine.Analyze(content)

	s.log.Info("density analysis complete",
		"analysis_id", id,
		"total_words", report.TotalWords,
		"unique_keywords", report.UniqueKeywords)

	c.JSON(http.StatusOK, densityResponse{
		AnalysisID:     id,
		Stats:          statsFor(content),
		TotalWords:     report.TotalWords,
		UniqueKeywords: report.UniqueKeywords,
		TopKeywords: lo.Map(report.TopKeywords, func(k density.Keyword, _ int) keywordEntry {
			return keywordEntry{
				Word:      k.Word,
				Frequency: k.Frequency,
				Density:   k.Density,
				Tier:      string(k.Tier),
			}
		}),
		AverageDensity: report.AverageDensity,
		TopDensity:     report.TopDensity,
	})
}

func (s *Server) handleDetect(c *gin.Context) {
	content, ok := s.bindContent(c)
	if !ok {
		return
	}

	id := uuid.NewString()
	result := s.detector.Classify(content)

	info := whatlanggo.Detect(content)
	lang := info.Lang.Iso6391()
	warning := ""
	if lang != "" && lang != "en" {
		warning = "detection heuristics are tuned for English text"
	}

	s.log.Info("detection complete",
		"analysis_id", id,
		"ai_probability", result.AIProbability,
		"verdict", result.Verdict,
		"language", lang)

	c.JSON(http.StatusOK, detectResponse{
		AnalysisID:      id,
		Stats:           statsFor(content),
		Language:        lang,
		LanguageWarning: warning,
		Result:          result,
	})
}

func statsFor(content string) textStats {
	return textStats{
		Characters: len([]rune(content)),
		Words:      len(strings.Fields(content)),
		Sentences:  len(textkit.Sentences(content)),
	}
}
