package cli

import (
	"net/http"

	"github.com/classware/gbctl/pkg/data"
	"github.com/gin-gonic/gin"
)

func homeViewHandler(report *data.Report) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := gin.H{
			"version":      version,
			"summary":      report.Summary,
			"grades":       data.Grades,
			"distribution": report.Distribution,
			"passfail":     report.PassFail,
			"rows":         report.Rows,
		}
		c.HTML(http.StatusOK, "home", d)
	}
}

func summaryDataHandler(report *data.Report) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, report.Summary)
	}
}

func gradesDataHandler(report *data.Report) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"grades":       report.Grades,
			"distribution": report.Distribution,
		})
	}
}

func passFailDataHandler(report *data.Report) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, report.PassFail)
	}
}

func rowsDataHandler(report *data.Report) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, report.Rows)
	}
}
