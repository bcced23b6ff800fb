package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/benpop/lua-addrbit/addrbit"
	"github.com/benpop/lua-addrbit/internalerror"
	"github.com/benpop/lua-addrbit/metrics"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func statusOf(err error) int {
	if errors.Cause(err) == internalerror.UnknownOperation {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

//GET /call/:op?arg=1&arg=0xff[&radix=16]
//an address result is a decimal string, JSON numbers lose bits above 2^53
func callHandler(module *addrbit.Module) gin.HandlerFunc {
	return func(c *gin.Context) {
		op := c.Param("op")
		m := module
		if s := c.Query("radix"); s != "" {
			radix, err := strconv.Atoi(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "radix: " + err.Error()})
				return
			}
			m = module.WithRadix(radix)
		}

		query := c.QueryArray("arg")
		args := make([]interface{}, 0, len(query))
		for _, arg := range query {
			args = append(args, arg)
		}

		r, err := m.Call(op, args...)
		if err != nil {
			c.JSON(statusOf(err), gin.H{"op": op, "error": err.Error()})
			return
		}
		if r.IsBool {
			c.JSON(http.StatusOK, gin.H{"op": op, "result": r.Bool})
			return
		}
		c.JSON(http.StatusOK, gin.H{"op": op, "result": strconv.FormatUint(r.Address.AsU64(), 10), "hex": r.Address.String()})
	}
}

func newRouter(module *addrbit.Module, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/ops", func(c *gin.Context) {
		c.JSON(http.StatusOK, addrbit.Names())
	})
	r.GET("/call/:op", callHandler(module))
	r.GET("/metrics", gin.WrapH(metrics.PrometheusHandler))
	return r
}
