package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ordertotal/order-total-service/pkg/middleware"
)

// NewRouter wires the routing table. Unknown paths and known paths with
// the wrong method both get a bare 404. The CORS wrapper sits outside the
// router so those responses carry the headers too (mux middlewares do not
// run for NotFoundHandler).
func NewRouter(oh *OrderHandler, mws ...mux.MiddlewareFunc) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/compute", oh.Preflight).Methods(http.MethodOptions)
	r.HandleFunc("/compute", oh.Compute).Methods(http.MethodPost)
	r.HandleFunc("/", oh.Usage).Methods(http.MethodGet)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	for _, mw := range mws {
		r.Use(mw)
	}

	return middleware.CORS(r)
}
