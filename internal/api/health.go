package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on the operations workbook being reachable).
type HealthHandler struct {
	sourceCheck func() error // Function to check the operations source
}

// NewHealthHandler constructs a HealthHandler with the provided source check.
//
// Parameters:
//   - sourceCheck (func() error): A function that verifies the operations
//     workbook is reachable, typically an os.Stat of the configured path.
func NewHealthHandler(sourceCheck func() error) *HealthHandler {
	return &HealthHandler{sourceCheck: sourceCheck}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the source check succeeds, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe (checks the operations source)
	// @Summary      Readiness probe
	// @Description  Returns ready if the operations workbook is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.sourceCheck != nil && h.sourceCheck() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
