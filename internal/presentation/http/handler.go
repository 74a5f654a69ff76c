package httppresentation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appCatalog "github.com/peemtanapat/retail-backoffice/internal/application/catalog"
	appInventory "github.com/peemtanapat/retail-backoffice/internal/application/inventory"
	appOrder "github.com/peemtanapat/retail-backoffice/internal/application/order"
	appReview "github.com/peemtanapat/retail-backoffice/internal/application/review"
	appStore "github.com/peemtanapat/retail-backoffice/internal/application/store"
	"github.com/peemtanapat/retail-backoffice/internal/observability"
)

const componentHTTPHandler = "http_server"

type Handler struct {
	orders    *appOrder.Service
	products  *appCatalog.Service
	inventory *appInventory.Service
	stores    *appStore.Service
	reviews   *appReview.Service
	log       observability.Logger
	tel       observability.Telemetry
}

func NewHandler(
	orders *appOrder.Service,
	products *appCatalog.Service,
	inventory *appInventory.Service,
	stores *appStore.Service,
	reviews *appReview.Service,
	logger observability.Logger,
	tel observability.Telemetry,
) *Handler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = observability.NopLogger()
	}
	return &Handler{
		orders:    orders,
		products:  products,
		inventory: inventory,
		stores:    stores,
		reviews:   reviews,
		log:       baseLogger.With(observability.F("component", componentHTTPHandler)),
		tel:       tel,
	}
}

func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(Observability(h.log, h.tel))

	r.GET("/health", h.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	products := r.Group("/api/v1/products")
	{
		products.POST("", h.handleAddProduct)
		products.GET("", h.handleListProducts)
		products.GET("/:id", h.handleGetProduct)
		products.PUT("/:id", h.handleUpdateProduct)
		products.DELETE("/:id", h.handleDeleteProduct)
		products.GET("/category/:name/:category", h.handleFilterProducts)
		products.GET("/filter/:category/:storeid", h.handleProductsByCategoryAndStore)
		products.GET("/searchProduct/:name", h.handleSearchProducts)
	}

	inventory := r.Group("/inventory")
	{
		inventory.POST("/save", h.handleSaveStock)
		inventory.PUT("/update", h.handleUpdateStock)
		inventory.GET("/store/:storeId", h.handleProductsAtStore)
		inventory.GET("/filter/:category/:name", h.handleFilterStockedProducts)
		inventory.GET("/search", h.handleSearchAtStore)
		inventory.GET("/validate", h.handleValidateQuantity)
		inventory.DELETE("/product/:id", h.handleRemoveProduct)
	}

	stores := r.Group("/api/v1/stores")
	{
		stores.POST("/placeOrder", h.handlePlaceOrder)
		stores.POST("/", h.handleAddStore)
		stores.GET("/:storeId", h.handleValidateStore)
	}

	r.GET("/api/v1/orders/:id", h.handleGetOrder)

	reviews := r.Group("/api/v1/reviews")
	{
		reviews.POST("", h.handleCreateReview)
		reviews.GET("/:storeId/:productId", h.handleReviewsByStoreAndProduct)
		reviews.PUT("/:id", h.handleUpdateReview)
		reviews.DELETE("/:id", h.handleDeleteReview)
		reviews.GET("/customer/:customerId", h.handleReviewsByCustomer)
		reviews.GET("/product/:productId", h.handleReviewsByProduct)
	}

	return r
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
