package v1

import (
	"fmt"
	"net/http"

	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"job-board-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	msgListFailed   = "Error getting jobs"
	msgCreateFailed = "Error saving job"
	msgCreated      = "Job saved successfully"
)

type JobHandler struct {
	jobUC    domain.JobUsecase
	exportUC domain.ExportUsecase
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobUsecase, exportUC domain.ExportUsecase) {
	handler := &JobHandler{jobUC: jobUC, exportUC: exportUC}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/export", handler.Export)
	}
}

// filterFromQuery reads type, location and tag; blank values add no constraint.
func filterFromQuery(c *gin.Context) domain.JobFilter {
	return domain.JobFilter{
		Type:     c.Query("type"),
		Location: c.Query("location"),
		Tag:      c.Query("tag"),
	}
}

// ListJobs godoc
// @Summary      List jobs
// @Description  All postings matching the optional filters, newest first. No paging.
// @Tags         jobs
// @Produce      json
// @Param        type      query     string  false  "Exact job type"  Enums(Full Time, Part Time, Internship, Contract)
// @Param        location  query     string  false  "Case-insensitive location substring"
// @Param        tag       query     string  false  "Case-insensitive substring of any tag"
// @Success      200       {array}   domain.Job
// @Failure      500       {string}  string  "Error getting jobs"
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := filterFromQuery(c)

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), filter)
	if err != nil {
		logger.Log.Error(msgListFailed, "error", err, "filter", filter, "request_id", c.GetString(response.RequestIDKey))
		response.Text(c, http.StatusInternalServerError, msgListFailed)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// CreateJob godoc
// @Summary      Create a job
// @Description  Stores the posting as submitted. Missing location/type/tags take defaults; nothing is validated.
// @Tags         jobs
// @Accept       json
// @Produce      plain
// @Param        job  body      domain.JobInput  true  "Job JSON"
// @Success      200  {string}  string  "Job saved successfully"
// @Failure      500  {string}  string  "Error saving job"
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req domain.JobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		// malformed bodies are reported like any other failure
		logger.Log.Error(msgCreateFailed, "error", err, "request_id", c.GetString(response.RequestIDKey))
		response.Text(c, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), req)
	if err != nil {
		logger.Log.Error(msgCreateFailed, "error", err, "request_id", c.GetString(response.RequestIDKey))
		response.Text(c, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	logger.Log.Info("Job created", "id", job.ID, "company", job.Company)
	response.Text(c, http.StatusOK, msgCreated)
}

// ExportJobs godoc
// @Summary      Export jobs
// @Description  The filtered listing as an xlsx or csv attachment.
// @Tags         jobs
// @Produce      octet-stream
// @Param        format    query     string  false  "xlsx (default) or csv"
// @Param        type      query     string  false  "Exact job type"
// @Param        location  query     string  false  "Case-insensitive location substring"
// @Param        tag       query     string  false  "Case-insensitive substring of any tag"
// @Success      200       {file}    file
// @Failure      400       {object}  response.ErrorBody
// @Failure      500       {object}  response.ErrorBody
// @Router       /jobs/export [get]
func (h *JobHandler) Export(c *gin.Context) {
	file, err := h.exportUC.ExportJobs(c.Request.Context(), domain.ExportRequest{
		Filter: filterFromQuery(c),
		Format: c.Query("format"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
