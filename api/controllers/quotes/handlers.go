package quotes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/merchly/quoter-backend/api/responses"
	"github.com/merchly/quoter-backend/api/validators"
	"github.com/merchly/quoter-backend/internal/coupon"
	"github.com/merchly/quoter-backend/internal/quote"
	pkgerrors "github.com/merchly/quoter-backend/pkg/errors"
	"github.com/merchly/quoter-backend/pkg/logger"
)

// Engine is the quote engine surface the controllers consume.
type Engine interface {
	CreateOrUpdate(ctx context.Context, sessionID string, cart quote.Cart, addr *quote.ShippingAddress, hints *quote.EstimationHints, selectedShippingID string) (*quote.Quote, error)
	Get(ctx context.Context, sessionID string) (*quote.Quote, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (quote.CouponResult, error)
	RemoveCoupon(ctx context.Context, sessionID, code string) (quote.CouponResult, error)
	ValidateForPayment(ctx context.Context, sessionID string, version int) (quote.PaymentValidation, error)
	AvailableCoupons(ctx context.Context, sessionID string) []coupon.Offer
}

// QuoteUpsert creates or refreshes the quote for a session. A missing
// session id is minted server-side so first-time callers get one back on
// the quote view.
func QuoteUpsert(engine Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote engine unavailable"))
			return
		}

		var payload QuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := payload.QuoteSessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		cart, err := toCart(payload.Cart)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		q, err := engine.CreateOrUpdate(r.Context(), sessionID, cart, toAddress(payload.ShippingAddress), toHints(payload.EstimationHints), payload.SelectedShippingID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuoteView(q))
	}
}

// QuoteFetch returns the live quote for a session.
func QuoteFetch(engine Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote engine unavailable"))
			return
		}

		q, err := engine.Get(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuoteView(q))
	}
}

// QuoteValidatePayment checks whether the supplied version is chargeable.
func QuoteValidatePayment(engine Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote engine unavailable"))
			return
		}

		var payload PaymentValidationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := engine.ValidateForPayment(r.Context(), chi.URLParam(r, "sessionID"), payload.Version)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, PaymentValidationView{Valid: result.Valid, Message: result.Message})
	}
}

// CouponApply applies a coupon code to the session's quote.
func CouponApply(engine Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote engine unavailable"))
			return
		}

		var payload CouponRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := engine.ApplyCoupon(r.Context(), chi.URLParam(r, "sessionID"), payload.Code)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCouponResultView(result))
	}
}

// CouponRemove strips a previously applied coupon from the session's quote.
func CouponRemove(engine Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote engine unavailable"))
			return
		}

		result, err := engine.RemoveCoupon(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "code"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCouponResultView(result))
	}
}

// CouponsAvailable lists offers the session's cart already qualifies for.
func CouponsAvailable(engine Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if engine == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote engine unavailable"))
			return
		}

		offers := engine.AvailableCoupons(r.Context(), chi.URLParam(r, "sessionID"))
		responses.WriteSuccess(w, newOfferViews(offers))
	}
}

func newCouponResultView(result quote.CouponResult) CouponResultView {
	return CouponResultView{
		Success: result.Success,
		Message: result.Message,
		Quote:   newQuoteView(result.Quote),
	}
}
