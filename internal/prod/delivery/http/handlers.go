package http

import (
	"github.com/gin-gonic/gin"

	"prod-tracker/pkg/response"
)

// CreateForm godoc
// @Summary     Start a create form
// @Description Opens a new empty batch form session. The form starts closed.
// @Tags        Forms
// @Produce     json
// @Success     200 {object} formResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/forms [POST]
func (h *handler) CreateForm(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CreateForm(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateForm: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFormResp(output))
}

// EditForm godoc
// @Summary     Start an edit form
// @Description Opens a form session seeded from an existing batch record.
// @Tags        Forms
// @Accept      json
// @Produce     json
// @Param       body body editFormReq true "Existing batch"
// @Success     200 {object} formResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/forms/edit [POST]
func (h *handler) EditForm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditFormReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.EditForm(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.EditForm: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFormResp(output))
}

// Detail godoc
// @Summary     Get form state
// @Description Returns field values, error flags and the submission error of a form.
// @Tags        Forms
// @Produce     json
// @Param       id path string true "Form ID"
// @Success     200 {object} formResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/forms/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFormResp(output))
}

// Open godoc
// @Summary     Show a form
// @Tags        Forms
// @Produce     json
// @Param       id path string true "Form ID"
// @Success     200 {object} formResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/forms/{id}/open [POST]
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Open(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Open: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFormResp(output))
}

// Close godoc
// @Summary     Hide a form
// @Description Field values are kept and shown again on the next open.
// @Tags        Forms
// @Produce     json
// @Param       id path string true "Form ID"
// @Success     200 {object} formResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/forms/{id}/close [POST]
func (h *handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Close(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Close: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFormResp(output))
}

// EditSelection godoc
// @Summary     Set a department or model
// @Tags        Forms
// @Accept      json
// @Produce     json
// @Param       id   path string       true "Form ID"
// @Param       body body selectionReq true "deptId or modelId and its value"
// @Success     200 {object} formResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/forms/{id}/selection [PUT]
func (h *handler) EditSelection(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectionReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.EditSelection(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.EditSelection: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFormResp(output))
}

// EditNumber godoc
// @Summary     Set a numeric field
// @Description The raw input is parsed as an integer; unparsable input clears the field.
// @Tags        Forms
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Form ID"
// @Param       body body numberReq true "Field name and raw input"
// @Success     200 {object} formResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/forms/{id}/number [PUT]
func (h *handler) EditNumber(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNumberReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.EditNumber(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.EditNumber: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFormResp(output))
}

// ToggleStatus godoc
// @Summary     Toggle defect or spoiled status
// @Tags        Forms
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Form ID"
// @Param       body body statusReq true "hasDefect or isSpoiled"
// @Success     200 {object} formResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/forms/{id}/status [POST]
func (h *handler) ToggleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStatusReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.ToggleStatus(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ToggleStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFormResp(output))
}

// Submit godoc
// @Summary     Submit a form
// @Description Validates the form and writes the batch. Blocked and failed submits
// @Description are reported in the result with the form state, not as HTTP errors.
// @Tags        Forms
// @Produce     json
// @Param       id path string true "Form ID"
// @Success     200 {object} submitResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Submit already in progress"
// @Router      /api/v1/forms/{id}/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Submit(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// Options godoc
// @Summary     Department and model dropdowns
// @Tags        Options
// @Produce     json
// @Param       mode query string false "create (default) or edit"
// @Success     200 {object} optionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/options [GET]
func (h *handler) Options(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOptionsReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Options(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Options: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newOptionsResp(output))
}

// Dept godoc
// @Summary     Cached department
// @Description Returns the locally cached department with its batch list.
// @Tags        Depts
// @Produce     json
// @Param       id path string true "Department ID"
// @Success     200 {object} deptResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/depts/{id} [GET]
func (h *handler) Dept(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Dept(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Dept: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDeptResp(output))
}
