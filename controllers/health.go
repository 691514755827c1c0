// controllers/health.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yad-anakin/diva/config"
)

const pingTimeout = 2 * time.Second

// DBPinger is the slice of *sql.DB the health check needs.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type HealthController struct {
	DB  DBPinger
	Cfg config.Config
	Log *zap.Logger
}

// Health pings the backing store. Outside production the response carries the
// redacted connection target to help diagnose misconfiguration; internals
// never leak in production.
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := hc.DB.PingContext(ctx); err != nil {
		hc.Log.Error("database health check failed", zap.Error(err))
		body := gin.H{"ok": false, "error": "database unreachable"}
		if !hc.Cfg.Production {
			body["devInfo"] = gin.H{"uri": config.RedactDSN(hc.Cfg.DBURL)}
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	body := gin.H{"ok": true}
	if !hc.Cfg.Production {
		body["devInfo"] = gin.H{"uri": config.RedactDSN(hc.Cfg.DBURL)}
	}
	c.JSON(http.StatusOK, body)
}
