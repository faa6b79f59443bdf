package controllers

import (
	"github.com/gin-gonic/gin"

	"fruitbox/internal/services"
	"fruitbox/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (ct *CatalogController) ListProducts(c *gin.Context) {
	products, err := ct.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Products fetched successfully")
}

func (ct *CatalogController) GetProductById(c *gin.Context) {
	product, err := ct.catalogService.GetProductById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Product fetched successfully")
}
