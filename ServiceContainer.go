package main

import (
	"github.com/gin-gonic/gin"

	"sheetEngine/contracts"
)

type ServiceContainer struct {
	FormulaParser     contracts.FormulaParser
	SheetEngine       contracts.SheetEngine
	WebhookDispatcher contracts.WebhookDispatcher
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer() ServiceContainer {
	var container ServiceContainer

	container.FormulaParser = NewExpressionFormulaParser()
	container.SheetEngine = NewSheet(container.FormulaParser)
	container.WebhookDispatcher = NewWebhookDispatcher()
	container.ApiController = NewApiController(container.SheetEngine, container.WebhookDispatcher)
	container.Router = SetupRouter(container.ApiController)

	return container
}
