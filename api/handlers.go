package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/sites/:site/home
func (s *Server) home(c *gin.Context, site string) (any, error) {
	return s.svc.Home(c.Request.Context(), site)
}

// GET /api/v1/sites/:site/list?url=&page=
func (s *Server) list(c *gin.Context, site string) (any, error) {
	page, err := pageParam(c)
	if err != nil {
		return nil, err
	}
	return s.svc.List(c.Request.Context(), site, c.Query("url"), page)
}

// GET /api/v1/sites/:site/latest?page=
func (s *Server) latest(c *gin.Context, site string) (any, error) {
	page, err := pageParam(c)
	if err != nil {
		return nil, err
	}
	return s.svc.Latest(c.Request.Context(), site, page)
}

// GET /api/v1/sites/:site/ongoing?page=
func (s *Server) ongoing(c *gin.Context, site string) (any, error) {
	page, err := pageParam(c)
	if err != nil {
		return nil, err
	}
	return s.svc.Ongoing(c.Request.Context(), site, page)
}

// GET /api/v1/sites/:site/search?q=&page=
func (s *Server) search(c *gin.Context, site string) (any, error) {
	page, err := pageParam(c)
	if err != nil {
		return nil, err
	}
	return s.svc.Search(c.Request.Context(), site, c.Query("q"), page)
}

func (s *Server) byGenre(c *gin.Context, site string) (any, error) {
	page, err := pageParam(c)
	if err != nil {
		return nil, err
	}
	return s.svc.ByGenre(c.Request.Context(), site, c.Param("slug"), page)
}

func (s *Server) byCountry(c *gin.Context, site string) (any, error) {
	page, err := pageParam(c)
	if err != nil {
		return nil, err
	}
	return s.svc.ByCountry(c.Request.Context(), site, c.Param("slug"), page)
}

func (s *Server) byYear(c *gin.Context, site string) (any, error) {
	page, err := pageParam(c)
	if err != nil {
		return nil, err
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return nil, invalidParam("year must be a number")
	}
	return s.svc.ByYear(c.Request.Context(), site, year, page)
}

func (s *Server) byFeature(c *gin.Context, site string) (any, error) {
	page, err := pageParam(c)
	if err != nil {
		return nil, err
	}
	return s.svc.ByFeature(c.Request.Context(), site, c.Param("slug"), page)
}

func (s *Server) special(c *gin.Context, site string) (any, error) {
	page, err := pageParam(c)
	if err != nil {
		return nil, err
	}
	return s.svc.Special(c.Request.Context(), site, c.Param("slug"), page)
}

func (s *Server) detail(c *gin.Context, site string) (any, error) {
	return s.svc.Detail(c.Request.Context(), site, c.Param("slug"))
}

func (s *Server) series(c *gin.Context, site string) (any, error) {
	return s.svc.SeriesDetail(c.Request.Context(), site, c.Param("slug"))
}

func (s *Server) animeDetail(c *gin.Context, site string) (any, error) {
	return s.svc.AnimeDetail(c.Request.Context(), site, c.Param("slug"))
}

// GET /api/v1/sites/:site/episode?url=
func (s *Server) episode(c *gin.Context, site string) (any, error) {
	return s.svc.Episode(c.Request.Context(), site, c.Query("url"))
}

func (s *Server) genres(c *gin.Context, site string) (any, error) {
	return s.svc.Genres(c.Request.Context(), site)
}

func (s *Server) feed(c *gin.Context, site string) (any, error) {
	return s.svc.Feed(c.Request.Context(), site)
}
