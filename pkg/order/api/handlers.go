package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/ordertotal/order-total-service/pkg/common"
	"github.com/ordertotal/order-total-service/pkg/logger"
	"github.com/ordertotal/order-total-service/pkg/order"
	"github.com/ordertotal/order-total-service/pkg/taxrate"
)

const taxRateUnavailableMsg = "The zip code in the order does not have a corresponding sales tax rate."

const usage = "Try POSTing data to /compute such as: `curl localhost:8002/compute -XPOST -d " +
	`'{"order_id":1,"product_id":12,"quantity":2,"subtotal":49.99,` +
	`"shipping_address":"123 Main St","shipping_zip":"78701","total":0}'` + "`\n"

type IOrderService interface {
	ComputeTotal(ctx context.Context, body []byte) (*order.Order, error)
}

type OrderHandler struct {
	service IOrderService
}

func NewOrderHandler(s IOrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

func (oh OrderHandler) Compute(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Log(r.Context()).Errorf("order/handlers: failed reading request body, %v", err)
		common.WriteMsg(w, err.Error(), http.StatusInternalServerError)
		return
	}

	o, err := oh.service.ComputeTotal(r.Context(), body)
	if err != nil {
		status, msg := errorStatus(err)
		common.WriteMsg(w, msg, status)
		return
	}

	common.WriteRespJSON(w, o)
}

// Preflight answers the CORS OPTIONS probe. The headers themselves are
// attached by the middleware.
func (oh OrderHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (oh OrderHandler) Usage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(usage)) //nolint:errcheck
}

// errorStatus maps every compute failure onto the wire contract. The
// switch is total over the failure kinds: anything not recognized is an
// unexpected internal error and its text goes to the client verbatim.
func errorStatus(err error) (status int, msg string) {
	switch {
	case errors.Is(err, order.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, taxrate.ErrNotAvailable):
		return http.StatusServiceUnavailable, taxRateUnavailableMsg
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
