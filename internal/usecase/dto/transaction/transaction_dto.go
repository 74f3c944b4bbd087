package transactiondto

type CreateTransactionInput struct {
	LbpAmount float64
	UsdAmount float64
	UsdToLbp  bool
}
