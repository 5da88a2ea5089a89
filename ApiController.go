package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sheetEngine/contracts"
)

type ApiController struct {
	SheetEngine       contracts.SheetEngine
	WebhookDispatcher contracts.WebhookDispatcher
}

type CellEndpointParams struct {
	CellId string `uri:"cell_id" binding:"required"`
}

type SetCellRequest struct {
	// pointer so an explicitly empty value still binds
	Value *string `json:"value" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required,url"`
}

func NewApiController(engine contracts.SheetEngine, dispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{SheetEngine: engine, WebhookDispatcher: dispatcher}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var cell *contracts.Cell
	var changed []*contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err == nil {
		cell, changed, err = api.SheetEngine.SetCell(params.CellId, *request.Value)
	}

	if err != nil {
		if cell == nil {
			cell = &contracts.Cell{CellId: params.CellId}
		}
		if request.Value != nil {
			cell.Value = *request.Value
		}
		cell.Result = err.Error()
		c.JSON(http.StatusUnprocessableEntity, cell)
		return
	}

	api.WebhookDispatcher.Notify(changed)
	c.JSON(http.StatusCreated, cell)
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var cell *contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		cell, err = api.SheetEngine.GetCell(params.CellId)
	}

	if errors.Is(err, contracts.CellNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, contracts.InvalidPositionError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, cell)
	}
}

func (api *ApiController) ClearCellAction(c *gin.Context) {
	params := CellEndpointParams{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = api.SheetEngine.ClearCell(params.CellId)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	c.JSON(http.StatusOK, api.SheetEngine.CellList())
}

func (api *ApiController) GetSheetTextsAction(c *gin.Context) {
	var builder strings.Builder
	api.SheetEngine.PrintTexts(&builder)
	c.String(http.StatusOK, builder.String())
}

func (api *ApiController) GetSheetValuesAction(c *gin.Context) {
	var builder strings.Builder
	api.SheetEngine.PrintValues(&builder)
	c.String(http.StatusOK, builder.String())
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	var pos contracts.Position
	if err == nil {
		pos, err = contracts.ParsePosition(strings.ToUpper(strings.TrimSpace(params.CellId)))
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(pos.String(), request.WebhookUrl)
	c.JSON(http.StatusCreated, gin.H{
		"cell_id":     pos.String(),
		"webhook_url": request.WebhookUrl,
	})
}
