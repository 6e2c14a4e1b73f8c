package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-mulika/db"
	"go-mulika/types"
)

// ListReports returns reports filtered by status (?status=pending_review) with
// an optional ?limit.
func ListReports(c *gin.Context, store *db.FirestoreStore) {
	reportStatus := types.ReportStatus(c.Query("status"))

	limit := 0
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
			return
		}
		limit = parsed
	}

	reports, err := store.ReportsByStatus(c.Request.Context(), reportStatus, limit)
	if err != nil {
		log.Printf("Error listing reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}

	if tier := types.ConfidenceLevel(c.Query("tier")); tier != "" {
		filtered := reports[:0]
		for _, r := range reports {
			if r.ConfidenceLevel == tier {
				filtered = append(filtered, r)
			}
		}
		reports = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(reports),
		"reports": reports,
	})
}

// GetReport returns one report together with its per-stage processing logs.
func GetReport(c *gin.Context, store *db.FirestoreStore) {
	reportID := c.Param("id")

	report, err := store.GetReport(c.Request.Context(), reportID)
	if err != nil {
		log.Printf("Error getting report %s: %v", reportID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get report"})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	logs, err := store.ReportLogs(c.Request.Context(), reportID)
	if err != nil {
		log.Printf("Error getting logs for report %s: %v", reportID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get report logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report": report,
		"logs":   logs,
	})
}

type reviewRequest struct {
	Decision string `json:"decision" binding:"required"` // approved | rejected
	Reviewer string `json:"reviewer" binding:"required"`
	Notes    string `json:"notes"`
}

// ReviewReport records a human approve/reject decision on a pending report.
func ReviewReport(c *gin.Context, store *db.FirestoreStore) {
	reportID := c.Param("id")

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision := types.ReportStatus(req.Decision)
	if decision != types.StatusApproved && decision != types.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "decision must be approved or rejected"})
		return
	}

	report, err := store.ReviewReport(c.Request.Context(), reportID, decision, req.Reviewer, req.Notes)
	if err != nil {
		log.Printf("Error reviewing report %s: %v", reportID, err)
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report": report,
	})
}
