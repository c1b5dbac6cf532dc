package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /queue)
	GetQueue(c *gin.Context)
	// (PATCH /queue)
	UpdateQueue(c *gin.Context)
	// (POST /jobs)
	CreateJob(c *gin.Context)
	// (DELETE /jobs)
	StopJobs(c *gin.Context)
	// (GET /jobs/completed)
	ListCompletedJobs(c *gin.Context, params ListCompletedJobsParams)
	// (DELETE /jobs/waiting)
	ClearWaitingJobs(c *gin.Context)
	// (GET /jobs/log)
	GetJobLog(c *gin.Context, params GetJobLogParams)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

type MiddlewareFunc func(c *gin.Context)

func (siw *ServerInterfaceWrapper) runMiddlewares(c *gin.Context) bool {
	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return false
		}
	}
	return true
}

// GetQueue operation middleware
func (siw *ServerInterfaceWrapper) GetQueue(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetQueue(c)
}

// UpdateQueue operation middleware
func (siw *ServerInterfaceWrapper) UpdateQueue(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.UpdateQueue(c)
}

// CreateJob operation middleware
func (siw *ServerInterfaceWrapper) CreateJob(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.CreateJob(c)
}

// StopJobs operation middleware
func (siw *ServerInterfaceWrapper) StopJobs(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.StopJobs(c)
}

// ListCompletedJobs operation middleware
func (siw *ServerInterfaceWrapper) ListCompletedJobs(c *gin.Context) {
	var params ListCompletedJobsParams

	if err := runtime.BindQueryParameter("form", true, false, "n", c.Request.URL.Query(), &params.N); err != nil {
		siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter n: %w", err), http.StatusBadRequest)
		return
	}

	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.ListCompletedJobs(c, params)
}

// ClearWaitingJobs operation middleware
func (siw *ServerInterfaceWrapper) ClearWaitingJobs(c *gin.Context) {
	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.ClearWaitingJobs(c)
}

// GetJobLog operation middleware
func (siw *ServerInterfaceWrapper) GetJobLog(c *gin.Context) {
	var params GetJobLogParams
	query := c.Request.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "qid", query, &params.Qid); err != nil {
		siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter qid: %w", err), http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "lane", query, &params.Lane); err != nil {
		siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter lane: %w", err), http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "state", query, &params.State); err != nil {
		siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter state: %w", err), http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &params.Page); err != nil {
		siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter page: %w", err), http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "page_size", query, &params.PageSize); err != nil {
		siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter page_size: %w", err), http.StatusBadRequest)
		return
	}

	if !siw.runMiddlewares(c) {
		return
	}
	siw.Handler.GetJobLog(c, params)
}

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

// RegisterHandlers creates http.Handler with routing matching the API.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options.
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, Error{Error: err.Error()})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	router.GET(options.BaseURL+"/queue", wrapper.GetQueue)
	router.PATCH(options.BaseURL+"/queue", wrapper.UpdateQueue)
	router.POST(options.BaseURL+"/jobs", wrapper.CreateJob)
	router.DELETE(options.BaseURL+"/jobs", wrapper.StopJobs)
	router.GET(options.BaseURL+"/jobs/completed", wrapper.ListCompletedJobs)
	router.DELETE(options.BaseURL+"/jobs/waiting", wrapper.ClearWaitingJobs)
	router.GET(options.BaseURL+"/jobs/log", wrapper.GetJobLog)
}
