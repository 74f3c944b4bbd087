package httpdto

// Bound request bodies. Numeric and boolean fields are pointers so that
// "field absent" and "zero value" stay distinguishable: a zero amount or a
// false direction flag is valid input, a missing key is not.

type CreateOfferRequest struct {
	TransactionID string   `json:"transaction_id" binding:"required"`
	Amount        *float64 `json:"amount" binding:"required"`
}

type OfferDecisionRequest struct {
	OfferID string `json:"offer_id" binding:"required"`
}

type CreateTransactionRequest struct {
	LbpAmount *float64 `json:"lbp_amount" binding:"required"`
	UsdAmount *float64 `json:"usd_amount" binding:"required"`
	UsdToLbp  *bool    `json:"usd_to_lbp" binding:"required"`
}

type CreateRequestRequest struct {
	Amount   *float64 `json:"amount" binding:"required"`
	UsdToLbp *bool    `json:"usd_to_lbp" binding:"required"`
}
