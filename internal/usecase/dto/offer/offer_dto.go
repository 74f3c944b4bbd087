package offerdto

type CreateOfferInput struct {
	TransactionID string
	Amount        float64
}

type CreateRequestInput struct {
	Amount   float64
	UsdToLbp bool
}
