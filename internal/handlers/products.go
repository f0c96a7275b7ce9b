package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"productmetrics/internal/repository"
)

const (
	notUpdatedText = "Not updated: Product not found"
	notDeletedText = "Not deleted: Product not found"
)

// ProductInput documents the accepted request body. Handlers decode into a
// generic document so the validator sees exactly what the client sent.
type ProductInput struct {
	Product                  string                 `json:"product" example:"Widget"`
	Material                 string                 `json:"material" example:"Steel"`
	Manufacturer             string                 `json:"manufacturer,omitempty" example:"ACME"`
	Cost                     float64                `json:"cost" example:"10"`
	EmbodiedCO2              float64                `json:"embodiedCO2" example:"5"`
	LifecycleStage           string                 `json:"lifecycleStage" enums:"production,use,end-of-life" example:"production"`
	CarbonCertifications     []string               `json:"carbonCertifications,omitempty"`
	ProductionCountry        string                 `json:"productionCountry,omitempty" example:"DE"`
	Recyclable               bool                   `json:"recyclable,omitempty"`
	Durability               string                 `json:"durability,omitempty" example:"10 years"`
	EnvironmentalImpactScore float64                `json:"environmentalImpactScore,omitempty" minimum:"0" maximum:"100"`
	AdditionalInfo           map[string]interface{} `json:"additionalInfo,omitempty"`
}

func logFailure(route string, status int, err error) {
	if status >= http.StatusInternalServerError {
		zap.S().Errorf("[%s] failed %d: %v", route, status, err)
		return
	}
	zap.S().Warnf("[%s] failed %d: %v", route, status, err)
}

// GetProducts godoc
// @Summary      List products
// @Description  Returns every stored product in natural order.
// @Tags         products
// @Produce      json
// @Success      200  {array}   models.Product
// @Failure      500  {object}  handlers.StorageError
// @Router       /products [get]
func GetProducts(repo repository.Repository, mode ErrorMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		products, err := repo.ListOrGet(c.Request.Context(), "")
		if err != nil {
			mode.respondFailure(c, route, err)
			return
		}

		zap.S().Debugf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

// GetProduct godoc
// @Summary      Get a product
// @Description  Returns an array holding the product, or an empty array when no product has the id.
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {array}   models.Product
// @Failure      400  {object}  validation.CastError  "strict mode, malformed id"
// @Failure      500  {object}  validation.CastError
// @Router       /products/{id} [get]
func GetProduct(repo repository.Repository, mode ErrorMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		id := c.Param("id")
		products, err := repo.ListOrGet(c.Request.Context(), id)
		if err != nil {
			mode.respondFailure(c, route, err)
			return
		}

		zap.S().Debugf("[%s] id=%s matched=%d", route, id, len(products))
		c.JSON(http.StatusOK, products)
	}
}

// CreateProduct godoc
// @Summary      Create a product
// @Description  Validates the body against the product schema and stores it.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      handlers.ProductInput  true  "Product"
// @Success      201      {object}  models.Product
// @Failure      400      {object}  validation.ValidationError  "strict mode, or body is not a JSON object"
// @Failure      500      {object}  validation.ValidationError
// @Router       /products [post]
func CreateProduct(repo repository.Repository, mode ErrorMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products"
		defer handlePanic(c, route)

		doc, err := readDocument(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, errInvalidBody.Error())
			return
		}

		product, err := repo.Create(c.Request.Context(), doc)
		if err != nil {
			mode.respondFailure(c, route, err)
			return
		}

		zap.S().Infof("[%s] created id=%s", route, product.ID.Hex())
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct godoc
// @Summary      Update a product
// @Description  Merges the body into the stored product and validates the result.
// @Description  An unknown id answers 200 with a text message unless strict status codes are enabled.
// @Tags         products
// @Accept       json
// @Produce      json,plain
// @Param        id       path      string                 true  "Product id"
// @Param        product  body      handlers.ProductInput  true  "Fields to change"
// @Success      200      {object}  models.Product
// @Failure      400      {object}  validation.ValidationError  "strict mode"
// @Failure      404      {object}  map[string]string           "strict mode"
// @Failure      500      {object}  validation.ValidationError
// @Router       /products/{id} [put]
func UpdateProduct(repo repository.Repository, mode ErrorMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /products/:id"
		defer handlePanic(c, route)

		id := c.Param("id")
		patch, err := readDocument(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, errInvalidBody.Error())
			return
		}

		product, err := repo.Update(c.Request.Context(), id, patch)
		if repository.IsNotFound(err) {
			mode.respondNotFound(c, route, notUpdatedText)
			return
		}
		if err != nil {
			mode.respondFailure(c, route, err)
			return
		}

		zap.S().Infof("[%s] updated id=%s", route, id)
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct godoc
// @Summary      Delete a product
// @Description  Removes the product and returns its last state.
// @Description  An unknown id answers 200 with a text message unless strict status codes are enabled.
// @Tags         products
// @Produce      json,plain
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  models.Product
// @Failure      400  {object}  validation.CastError  "strict mode, malformed id"
// @Failure      404  {object}  map[string]string     "strict mode"
// @Failure      500  {object}  handlers.StorageError
// @Router       /products/{id} [delete]
func DeleteProduct(repo repository.Repository, mode ErrorMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /products/:id"
		defer handlePanic(c, route)

		id := c.Param("id")
		product, err := repo.Delete(c.Request.Context(), id)
		if repository.IsNotFound(err) {
			mode.respondNotFound(c, route, notDeletedText)
			return
		}
		if err != nil {
			mode.respondFailure(c, route, err)
			return
		}

		zap.S().Infof("[%s] deleted id=%s", route, id)
		c.JSON(http.StatusOK, product)
	}
}
