package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-webhook/internal/httpx"
	"github.com/MikeMC777/ordenes-webhook/internal/metrics"
	ord "github.com/MikeMC777/ordenes-webhook/internal/order"
)

func init() {
	// the webhook and the simulator exchange totalPrice as a JSON number
	decimal.MarshalJSONWithoutQuotes = true
}

type deps struct {
	repo    ord.Repository
	logger  *slog.Logger
	metrics *metrics.Registry
}

// orderWebhookHandler runs the ingestion pipeline: decode, validate in
// fixed field order, normalize, persist once, respond.
//
// @Summary     Ingest a simulated order webhook
// @Accept      json
// @Produce     json
// @Param       payload body order.WebhookPayload true "order payload"
// @Success     200 {object} order.WebhookSuccess
// @Failure     400 {object} order.ErrorResponse
// @Failure     500 {object} order.ErrorResponse
// @Router      /webhooks/orders [post]
func orderWebhookHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := ord.DecodeWebhookPayload(c.Request.Body)
		if err != nil {
			// boundary schema: the body must be a JSON object
			c.JSON(http.StatusBadRequest, ord.ErrorResponse{
				Error:   "Bad Request",
				Message: "Invalid request body",
			})
			return
		}

		d.logger.Info("Received order webhook payload", "orderId", payload.ID)
		d.metrics.Received.Inc()

		if err := ord.Validate(payload); err != nil {
			var mf *ord.MissingFieldError
			if errors.As(err, &mf) {
				d.logger.Error("missing required field in webhook payload", "field", mf.Field)
				d.metrics.Rejected.WithLabelValues(mf.Field).Inc()
				c.JSON(http.StatusBadRequest, ord.ErrorResponse{
					Error:   "Bad Request",
					Message: "Missing required field: " + mf.Field,
				})
				return
			}
			processingFailed(c, d, err)
			return
		}

		rec, err := ord.Normalize(payload)
		if err != nil {
			processingFailed(c, d, err)
			return
		}

		stored, err := d.repo.Create(c.Request.Context(), rec)
		if err != nil {
			processingFailed(c, d, err)
			return
		}

		d.logger.Info("Successfully created order record",
			"id", stored.ID,
			"orderId", rec.OrderID,
		)
		d.metrics.Persisted.Inc()

		c.JSON(http.StatusOK, ord.WebhookSuccess{
			Success: true,
			Message: "Order processed successfully",
			Order:   stored,
		})
	}
}

// processingFailed is the single place the 500 shape is produced; the
// underlying message goes out in details (consumers are trusted internal
// callers).
func processingFailed(c *gin.Context, d deps, err error) {
	d.logger.Error("Error processing order webhook", "error", err.Error())
	d.metrics.Failed.Inc()
	c.JSON(http.StatusInternalServerError, ord.ErrorResponse{
		Error:   "Internal Server Error",
		Message: "Failed to process the order",
		Details: err.Error(),
	})
}

// listOrdersHandler backs the read-only dashboard. Anonymous viewers only
// see public records; nothing here feeds back into the ingestion pipeline.
//
// @Summary     List persisted orders
// @Produce     json
// @Param       limit  query int false "page size" default(20)
// @Param       offset query int false "page offset" default(0)
// @Success     200 {object} order.ListOrdersResponse
// @Failure     401 {object} order.ErrorResponse
// @Failure     500 {object} order.ErrorResponse
// @Security    BearerAuth
// @Router      /orders [get]
func listOrdersHandler(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		_, authenticated := httpx.Viewer(c)
		orders, err := d.repo.List(c.Request.Context(), !authenticated, limit, offset)
		if err != nil {
			d.logger.Error("failed to list orders", "error", err.Error())
			c.JSON(http.StatusInternalServerError, ord.ErrorResponse{
				Error:   "Internal Server Error",
				Message: "Failed to list orders",
			})
			return
		}
		if orders == nil {
			orders = []ord.Order{}
		}
		c.JSON(http.StatusOK, ord.ListOrdersResponse{Orders: orders})
	}
}

func healthzHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	}
}
