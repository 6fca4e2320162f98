// Package server exposes the resolution engine over HTTP using gin, the
// framework this codebase already depends on for its own request handling.
package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quantfall/resolution/catcher"
	"github.com/quantfall/resolution/model"
	"github.com/quantfall/resolution/planner"
	"github.com/quantfall/resolution/resolution"
)

// Server wires a model.Store and a resolution.SearchBackend behind the
// single resolution endpoint described in spec.md §6.
type Server struct {
	store   model.Store
	backend resolution.SearchBackend
	cache   *planner.ResolverTreeCache
}

// New returns a Server. The resolver-tree cache is shared across every
// request this Server handles.
func New(store model.Store, backend resolution.SearchBackend) *Server {
	return &Server{store: store, backend: backend, cache: &planner.ResolverTreeCache{}}
}

// Register mounts the resolution endpoint onto r.
func (s *Server) Register(r gin.IRouter) {
	r.POST("/_zentity/resolution", s.resolve)
	r.POST("/_zentity/resolution/:entityType", s.resolve)
}

// requestBody is the wire shape of a resolution request (spec.md §6): the
// model is supplied either inline (model) or by reference (the :entityType
// path parameter, or the entity_type body field), never both.
type requestBody struct {
	EntityType string                            `json:"entity_type"`
	Model      map[string]interface{}            `json:"model"`
	Attributes map[string]*model.RuntimeAttribute `json:"attributes"`
	Scope      model.Scope                        `json:"scope"`
}

func (s *Server) resolve(c *gin.Context) {
	var body requestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		catcher.BadRequest("malformed request body", err, nil).GinError(c)
		return
	}

	entityType := c.Param("entityType")
	if entityType == "" {
		entityType = body.EntityType
	}
	if entityType != "" && body.Model != nil {
		catcher.BadRequest("request must not set both entity_type and an inline model", nil, nil).GinError(c)
		return
	}

	m, err := s.resolveModel(c, entityType, body.Model)
	if err != nil {
		if sdkErr := catcher.ToSdkError(err); sdkErr != nil {
			sdkErr.GinError(c)
		} else {
			catcher.IOError("failed to resolve model", err, nil).GinError(c)
		}
		return
	}

	in := &model.Input{Model: m, Attributes: body.Attributes, Scope: body.Scope}

	options := optionsFromQuery(c)
	job := resolution.NewJob(s.backend, in, s.cache, options)

	out, err := job.Run(c.Request.Context())
	if err != nil {
		if sdkErr := catcher.ToSdkError(err); sdkErr != nil {
			sdkErr.GinError(c)
			return
		}
		catcher.IOError("resolution failed", err, nil).GinError(c)
		return
	}

	if options.Pretty {
		var indented bytes.Buffer
		if err := json.Indent(&indented, out, "", "  "); err == nil {
			out = indented.Bytes()
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

func (s *Server) resolveModel(c *gin.Context, entityType string, inline map[string]interface{}) (*model.Model, error) {
	if inline != nil {
		doc, err := json.Marshal(inline)
		if err != nil {
			return nil, catcher.ValidationError("failed to re-marshal inline model", err, nil)
		}
		return s.store.ParseModel(doc)
	}
	if entityType == "" {
		return nil, catcher.BadRequest("request must set either entity_type or an inline model", nil, nil)
	}
	return s.store.LoadModel(c.Request.Context(), entityType)
}

// optionsFromQuery maps query-string parameters onto resolution.Options,
// starting from resolution.DefaultOptions() and overriding only what the
// caller explicitly set (spec.md §6).
func optionsFromQuery(c *gin.Context) resolution.Options {
	options := resolution.DefaultOptions()

	if v, ok := c.GetQuery("_attributes"); ok {
		options.IncludeAttributes = parseBool(v, options.IncludeAttributes)
	}
	if v, ok := c.GetQuery("hits"); ok {
		options.IncludeHits = parseBool(v, options.IncludeHits)
	}
	if v, ok := c.GetQuery("queries"); ok {
		options.IncludeQueries = parseBool(v, options.IncludeQueries)
	}
	if v, ok := c.GetQuery("_source"); ok {
		options.IncludeSource = parseBool(v, options.IncludeSource)
	}
	if v, ok := c.GetQuery("max_docs_per_query"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			options.MaxDocsPerQuery = n
		}
	}
	if v, ok := c.GetQuery("max_hops"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			options.MaxHops = n
		}
	}
	if v, ok := c.GetQuery("pretty"); ok {
		options.Pretty = parseBool(v, options.Pretty)
	}
	if v, ok := c.GetQuery("profile"); ok {
		options.Profile = parseBool(v, options.Profile)
	}

	return options
}

func parseBool(v string, fallback bool) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
