package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(config *Config, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = multipartMemory
	r.Use(gin.Recovery(), RequestLogger(logger), LimitBody(config))

	SetupRoutes(r, NewHandler(config, logger))
	return r
}

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "pdfnest",
		})
	})

	apiGroup := r.Group("/api/pdf")
	{
		apiGroup.POST("/pages/parse", h.HandleParsePages)
		apiGroup.POST("/ranges/parse", h.HandleParseRanges)
		apiGroup.POST("/extract", h.HandleExtract)
		apiGroup.POST("/split", h.HandleSplit)
		apiGroup.POST("/remove-pages", h.HandleRemovePages)
		apiGroup.POST("/merge", h.HandleMerge)
		apiGroup.POST("/rotate", h.HandleRotate)
		apiGroup.POST("/watermark", h.HandleWatermark)
		apiGroup.POST("/protect", h.HandleProtect)
		apiGroup.POST("/unlock", h.HandleUnlock)
		apiGroup.POST("/compress", h.HandleCompress)
		apiGroup.POST("/images", h.HandleImagesToPDF)
		apiGroup.POST("/office", h.HandleOfficeToPDF)
	}

	documentGroup := r.Group("/api/document")
	{
		documentGroup.POST("/excel/json", h.HandleExcelToJSON)
		documentGroup.POST("/excel/csv", h.HandleExcelToCSV)
		documentGroup.POST("/xml", h.HandleCreateXML)
	}
}

// LimitBody caps request bodies at the largest legal multi-file upload.
func LimitBody(config *Config) gin.HandlerFunc {
	limit := config.MaxFileSize*int64(config.MaxFiles) + multipartMemory
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
