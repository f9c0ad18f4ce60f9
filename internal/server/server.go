// Package server exposes the codec over HTTP: parse, build, totals, convert
// and compose endpoints plus a health check.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/letspeppol/letspeppol/internal/calc"
	"github.com/letspeppol/letspeppol/internal/compose"
	"github.com/letspeppol/letspeppol/internal/convert"
	"github.com/letspeppol/letspeppol/internal/logger"
	"github.com/letspeppol/letspeppol/internal/model"
	"github.com/letspeppol/letspeppol/internal/profile"
	"github.com/letspeppol/letspeppol/internal/ubl"
)

// Config holds server configuration.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server is the HTTP API server.
type Server struct {
	config   *Config
	router   *gin.Engine
	composer *compose.Composer
	log      *logger.Logger
}

// NewServer creates the API server for one sender profile.
func NewServer(config *Config, cfg *profile.Config, log *logger.Logger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:   config,
		router:   router,
		composer: compose.New(cfg),
		log:      log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/parse", s.handleParse)
		v1.POST("/build", s.handleBuild)
		v1.POST("/totals", s.handleTotals)
		v1.POST("/convert", s.handleConvert)
		v1.POST("/compose", s.handleCompose)
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.log.Info().Str("addr", s.config.Address).Msg("starting API server")
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleParse(c *gin.Context) {
	body, ok := s.rawBody(c)
	if !ok {
		return
	}

	doc, warnings, err := ubl.Parse(body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ParseResponse{
		Kind:     doc.Kind(),
		Document: doc,
		Warnings: warnings,
	})
}

func (s *Server) handleBuild(c *gin.Context) {
	var req BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	doc, err := decodeDocument(req.Kind, req.Document)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid document", Details: err.Error()})
		return
	}

	s.respondXML(c, doc)
}

func (s *Server) handleTotals(c *gin.Context) {
	body, ok := s.rawBody(c)
	if !ok {
		return
	}

	doc, warnings, err := ubl.Parse(body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	if err := calc.Recalculate(doc); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Warnings: warnings})
		return
	}

	s.respondXML(c, doc)
}

func (s *Server) handleConvert(c *gin.Context) {
	body, ok := s.rawBody(c)
	if !ok {
		return
	}

	doc, _, err := ubl.Parse(body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	s.respondXML(c, convert.Toggle(doc))
}

func (s *Server) handleCompose(c *gin.Context) {
	var req ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	customer := compose.Customer{
		Name:             req.Customer.Name,
		EnterpriseNumber: req.Customer.EnterpriseNumber,
		VATNumber:        req.Customer.VATNumber,
		StreetName:       req.Customer.StreetName,
		CityName:         req.Customer.CityName,
		PostalZone:       req.Customer.PostalZone,
		CountryCode:      req.Customer.CountryCode,
		Email:            req.Customer.Email,
	}

	var doc model.Document
	switch req.Kind {
	case model.KindCreditNote:
		doc = s.composer.NewCreditNote(req.ID, customer, req.InvoiceID)
	case model.KindInvoice, "":
		doc = s.composer.NewInvoice(req.ID, customer)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown document kind"})
		return
	}

	s.respondXML(c, doc)
}

func (s *Server) rawBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return nil, false
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return nil, false
	}
	return body, true
}

func (s *Server) respondXML(c *gin.Context, doc model.Document) {
	out, err := ubl.Build(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/xml", out)
}

func decodeDocument(kind model.Kind, raw json.RawMessage) (model.Document, error) {
	switch kind {
	case model.KindCreditNote:
		var cn model.CreditNote
		if err := json.Unmarshal(raw, &cn); err != nil {
			return nil, err
		}
		return &cn, nil
	default:
		var inv model.Invoice
		if err := json.Unmarshal(raw, &inv); err != nil {
			return nil, err
		}
		return &inv, nil
	}
}
