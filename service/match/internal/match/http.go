package match

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter espone il catalogo in sola lettura per la UI.
// auth, se non nil, protegge tutte le rotte /api.
func NewRouter(service *Service, auth gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	if auth != nil {
		api.Use(auth)
	}
	api.GET("/matches", listMatches(service))
	api.GET("/matches/:id", getMatch(service))
	api.GET("/leaderboard", leaderboard(service))
	api.GET("/players/:id", getPlayer(service))
	return r
}

// listMatches: ?status=upcoming|past (default upcoming).
func listMatches(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := TimeFilter(c.DefaultQuery("status", string(FilterUpcoming)))
		matches, err := service.GetMatchesByStatus(c.Request.Context(), filter)
		if errors.Is(err, ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be upcoming or past"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"matches": matches})
	}
}

func getMatch(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := service.GetMatch(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

func leaderboard(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		players, err := service.GetLeaderboard(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"players": players})
	}
}

func getPlayer(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := service.GetPlayer(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrMatchNotFound) || errors.Is(err, ErrPlayerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
}
