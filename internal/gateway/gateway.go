package gateway

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/discovery"
)

// Route maps an inbound path prefix to a Consul service name.
type Route struct {
	Prefix  string
	Service string
}

// Gateway reverse-proxies API traffic to backend services resolved via
// Consul. Service URLs are re-resolved on a fixed interval so instances
// can come and go without a gateway restart.
type Gateway struct {
	consul *discovery.ConsulClient
	routes []Route
	log    *zap.SugaredLogger

	mu      sync.RWMutex
	proxies map[string]*httputil.ReverseProxy
}

func New(consul *discovery.ConsulClient, routes []Route, log *zap.SugaredLogger) *Gateway {
	return &Gateway{
		consul:  consul,
		routes:  routes,
		log:     log,
		proxies: make(map[string]*httputil.ReverseProxy),
	}
}

// Start resolves all routes once and then keeps refreshing them.
func (g *Gateway) Start(refreshInterval time.Duration) {
	g.refresh()
	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for range ticker.C {
			g.refresh()
		}
	}()
}

func (g *Gateway) refresh() {
	for _, route := range g.routes {
		serviceURL, err := g.consul.GetServiceURL(route.Service)
		if err != nil {
			g.log.Warnw("service resolution failed", "service", route.Service, "error", err)
			continue
		}

		target, err := url.Parse(serviceURL)
		if err != nil {
			g.log.Errorw("invalid service URL", "service", route.Service, "url", serviceURL, "error", err)
			continue
		}

		g.mu.Lock()
		g.proxies[route.Service] = httputil.NewSingleHostReverseProxy(target)
		g.mu.Unlock()
	}
}

func (g *Gateway) proxyFor(service string) *httputil.ReverseProxy {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.proxies[service]
}

// Handler returns a gin handler that forwards the request to the given
// backend service.
func (g *Gateway) Handler(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		proxy := g.proxyFor(service)
		if proxy == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  http.StatusServiceUnavailable,
				"message": fmt.Sprintf("service %s is unavailable", service),
			})
			return
		}
		proxy.ServeHTTP(c.Writer, c.Request)
	}
}

// RequestID tags every request with a correlation ID, generating one when
// the caller did not send it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Request.Header.Set("X-Request-ID", id)
		c.Next()
	}
}

// AggregateHealth probes every backend's /health and reports the overall
// picture.
func (g *Gateway) AggregateHealth() gin.HandlerFunc {
	client := &http.Client{Timeout: 3 * time.Second}
	return func(c *gin.Context) {
		statuses := make(map[string]string, len(g.routes))
		allUp := true
		for _, route := range g.routes {
			serviceURL, err := g.consul.GetServiceURL(route.Service)
			if err != nil {
				statuses[route.Service] = "DOWN"
				allUp = false
				continue
			}
			resp, err := client.Get(serviceURL + "/health")
			if err != nil || resp.StatusCode != http.StatusOK {
				statuses[route.Service] = "DOWN"
				allUp = false
			} else {
				statuses[route.Service] = "UP"
			}
			if resp != nil {
				resp.Body.Close()
			}
		}

		overall := "UP"
		code := http.StatusOK
		if !allUp {
			overall = "DEGRADED"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    overall,
			"services":  statuses,
			"timestamp": time.Now().UTC(),
		})
	}
}
