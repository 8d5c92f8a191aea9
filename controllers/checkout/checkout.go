package checkoutControllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tuka1911/dymokminiapp/cart"
	"github.com/Tuka1911/dymokminiapp/checkout"
	"github.com/Tuka1911/dymokminiapp/order"
)

type FormInput struct {
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DeviceCheck bool   `json:"device_check"`
	PromoCode   string `json:"promo_code"`
	Zone        string `json:"zone"`
}

// GET /checkout
func GetCheckout(flow *checkout.Flow, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, errMsg := flow.Status()
		view := gin.H{
			"status": status,
			"form":   flow.Form(),
			"totals": flow.Quote(store.TotalPrice()),
		}
		if errMsg != "" {
			view["error"] = errMsg
		}
		c.JSON(http.StatusOK, view)
	}
}

// PUT /checkout
func UpdateForm(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FormInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		form := checkout.Form{
			Phone:       input.Phone,
			Address:     input.Address,
			DeviceCheck: input.DeviceCheck,
			PromoCode:   input.PromoCode,
			Zone:        checkout.Zone(input.Zone),
		}
		if err := flow.Update(form); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"form": flow.Form()})
	}
}

// GET /checkout/quote?zone=&promo=
//
// Stateless totals preview against the current cart; an invalid promo
// code simply grants no discount.
func Quote(rules checkout.Rules, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		zone, err := checkout.ParseZone(c.Query("zone"))
		if err != nil && c.Query("zone") != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		totals := checkout.QuoteTotals(rules, c.Query("promo"), zone, store.TotalPrice())
		c.JSON(http.StatusOK, totals)
	}
}

// POST /checkout/submit
func Submit(flow *checkout.Flow, finalizer *order.Finalizer, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := flow.Begin()
		if err != nil {
			var verr *checkout.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
				return
			}
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		// Deliberately not the request context: abandoning the checkout
		// view must not cancel an in-flight submission. The flow token
		// makes a late result safely discardable instead.
		ctx, cancel := context.WithTimeout(context.Background(), flow.SubmitTimeout())
		defer cancel()

		ord, receipt, err := finalizer.Submit(ctx, store, flow.Form())
		flow.Finish(token, err)
		if err != nil {
			var verr *checkout.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": ord, "receipt": receipt})
	}
}

// DELETE /checkout
//
// Abandon or restart: any in-flight submission result is discarded and
// the next checkout starts from a fresh form.
func Reset(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow.Reset()
		c.JSON(http.StatusOK, gin.H{"message": "Checkout reset"})
	}
}
