package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/smartretail/internal/adapters/http/handlers"
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/service"
	"github.com/rafaelleal24/smartretail/internal/core/serviceerrors"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type ProductController struct {
	catalogService  *service.CatalogService
	purchaseService *service.PurchaseService
}

func NewProductController(catalogService *service.CatalogService, purchaseService *service.PurchaseService) *ProductController {
	return &ProductController{
		catalogService:  catalogService,
		purchaseService: purchaseService,
	}
}

func productID(c *gin.Context) (domain.ID, bool) {
	id, ok := domain.ParseID(c.Param("id"))
	if !ok {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
	}
	return id, ok
}

// GetAll godoc
// @Summary     List the catalog
// @Description Returns every product with its adjusted price and price rule
// @Tags        products
// @Produce     json
// @Success     200 {array}  dto.ProductView
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) GetAll(c *gin.Context) {
	products, err := pc.catalogService.List(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetByID godoc
// @Summary     Get a product
// @Tags        products
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} dto.ProductView
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetByID(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	product, err := pc.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Purchase godoc
// @Summary     Buy one unit
// @Description Sells one unit at the base price. Logged-in customers earn loyalty points.
// @Tags        products
// @Produce     json
// @Param       id              path     int    true  "Product ID"
// @Param       Idempotency-Key header   string false "Idempotency key"
// @Success     201             {object} dto.PurchaseReceipt
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/purchase [post]
func (pc *ProductController) Purchase(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	receipt, err := pc.purchaseService.Purchase(c.Request.Context(), c.GetHeader(IdempotencyKeyHeader), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}
