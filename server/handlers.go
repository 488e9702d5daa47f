package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cardcut/common"
	"cardcut/layout"
	"cardcut/misc"
	"cardcut/project"
	"cardcut/source"
)

// layoutRequest is project layout settings without sources. Pages are
// described by settings alone, their sizes come from page settings or page
// size.
type layoutRequest struct {
	project.Settings
	// PageCount is number of source pages, defaults to number of page settings.
	PageCount int `json:"page_count" binding:"gte=0,max=4096"`
}

const maxRequestPages = 4096

func (r *layoutRequest) build() (*layout.Layout, error) {
	if err := r.Settings.Validate(); err != nil {
		return nil, err
	}
	n := max(r.PageCount, len(r.Pages))
	if n > maxRequestPages {
		return nil, fmt.Errorf("%w: %d pages requested, at most %d allowed", layout.ErrTooLarge, n, maxRequestPages)
	}
	infos := make([]source.PageInfo, n)
	for i := range infos {
		infos[i] = source.PageInfo{Source: "request", Index: i}
	}
	return r.Settings.Layout(infos)
}

type resolveRequest struct {
	layoutRequest
	Indices []int `json:"indices" binding:"required"`
}

type pageView struct {
	ID            string          `json:"id"`
	OriginalIndex int             `json:"original_index"`
	Role          common.PageRole `json:"role"`
	Mode          string          `json:"mode,omitempty"`
	Size          layout.Size     `json:"size"`
	Cells         []layout.Result `json:"cells"`
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// planFor binds request body and returns memoized plan for it.
func (s *Server) planFor(c *gin.Context, req any, lr *layoutRequest) (*layout.Plan, bool) {
	if err := c.ShouldBindJSON(req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return nil, false
	}
	l, err := lr.build()
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, project.ErrNoPages) {
			status = http.StatusUnprocessableEntity
		}
		s.fail(c, status, err)
		return nil, false
	}
	p, err := s.cache.Plan(l)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return nil, false
	}
	if p.FallbackUsed() {
		s.log.Debug("Fallback page dimensions used", zap.Float64("width", layout.FallbackSize.Width), zap.Float64("height", layout.FallbackSize.Height))
	}
	return p, true
}

func (s *Server) health(c *gin.Context) {
	hits, misses := s.cache.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": misc.GetVersion(),
		"cache":   gin.H{"hits": hits, "misses": misses},
	})
}

func (s *Server) resolve(c *gin.Context) {
	var req resolveRequest
	p, ok := s.planFor(c, &req, &req.layoutRequest)
	if !ok {
		return
	}
	results := make([]layout.Result, 0, len(req.Indices))
	for _, i := range req.Indices {
		results = append(results, p.Resolve(i))
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "fallback": p.FallbackUsed()})
}

func (s *Server) cards(c *gin.Context) {
	t, err := common.ParseCardType(c.Param("type"))
	if err != nil || t == common.CardTypeUnknown {
		s.fail(c, http.StatusNotFound, errors.New("card type must be front or back"))
		return
	}
	var req layoutRequest
	p, ok := s.planFor(c, &req, &req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"type":    t,
		"count":   p.Count(t),
		"ids":     p.AvailableIDs(t),
		"indices": p.Indices(t),
	})
}

func (s *Server) plan(c *gin.Context) {
	var req layoutRequest
	p, ok := s.planFor(c, &req, &req)
	if !ok {
		return
	}
	pages := make([]pageView, 0, p.Pages())
	for i := range p.Pages() {
		pg := p.Page(i)
		v := pageView{
			ID:            pg.ID,
			OriginalIndex: pg.OriginalIndex,
			Role:          pg.Role,
			Size:          pg.Size,
			Cells:         p.PageResults(i),
		}
		if pg.Mode != nil {
			v.Mode = pg.Mode.String()
		}
		pages = append(pages, v)
	}
	c.JSON(http.StatusOK, gin.H{
		"grid":     p.Grid(),
		"fallback": p.FallbackUsed(),
		"counts": gin.H{
			common.CardTypeFront.String(): p.Count(common.CardTypeFront),
			common.CardTypeBack.String():  p.Count(common.CardTypeBack),
		},
		"pages": pages,
	})
}
