package http

import (
	"github.com/gin-gonic/gin"
)

// processEditFormReq binds and validates the edit form request body.
func (h *handler) processEditFormReq(c *gin.Context) (editFormReq, error) {
	var req editFormReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, req.validate()
}

func (h *handler) processSelectionReq(c *gin.Context) (selectionReq, error) {
	var req selectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	req.FormID = c.Param("id")
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processNumberReq(c *gin.Context) (numberReq, error) {
	var req numberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	req.FormID = c.Param("id")
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processStatusReq(c *gin.Context) (statusReq, error) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	req.FormID = c.Param("id")
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}

// processOptionsReq binds the options query. Mode defaults to create.
func (h *handler) processOptionsReq(c *gin.Context) (optionsReq, error) {
	var req optionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errWrongQuery
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}
