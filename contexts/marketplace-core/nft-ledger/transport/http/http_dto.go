package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TokenDTO struct {
	TokenID   uint64 `json:"token_id"`
	Metadata  string `json:"metadata"`
	Author    string `json:"author"`
	Owner     string `json:"owner"`
	Price     int64  `json:"price"`
	ForSale   bool   `json:"for_sale"`
	MintedAt  string `json:"minted_at"`
	UpdatedAt string `json:"updated_at"`
}

type TokenResponse struct {
	Status string   `json:"status"`
	Data   TokenDTO `json:"data"`
}

type MintTokenRequest struct {
	Metadata string `json:"metadata"`
}

type ListForSaleRequest struct {
	Price int64 `json:"price"`
}

type TransferTokenRequest struct {
	NewOwner string `json:"new_owner"`
}

type UpdateAuthorRequest struct {
	NewAuthor string `json:"new_author"`
}

type SaleDTO struct {
	Token        TokenDTO `json:"token"`
	Buyer        string   `json:"buyer"`
	Seller       string   `json:"seller"`
	Author       string   `json:"author"`
	Royalty      int64    `json:"royalty"`
	PlatformFee  int64    `json:"platform_fee"`
	SellerAmount int64    `json:"seller_amount"`
}

type BuyTokenResponse struct {
	Status string  `json:"status"`
	Data   SaleDTO `json:"data"`
}

type SetPauseRequest struct {
	Paused bool `json:"paused"`
}

type UpdateMintPriceRequest struct {
	NewPrice int64 `json:"new_price"`
}

type TransferAdminRequest struct {
	NewAdmin string `json:"new_admin"`
}

type WithdrawFeesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Admin  string `json:"admin"`
		Amount int64  `json:"amount"`
	} `json:"data"`
}

type LedgerSummaryResponse struct {
	Status string `json:"status"`
	Data   struct {
		TotalTokens        uint64 `json:"total_tokens"`
		Admin              string `json:"admin"`
		MintPrice          int64  `json:"mint_price"`
		RoyaltyPercent     int    `json:"royalty_percent"`
		PlatformFeePercent int    `json:"platform_fee_percent"`
		CollectedFees      int64  `json:"collected_fees"`
		Paused             bool   `json:"paused"`
	} `json:"data"`
}

type IsForSaleResponse struct {
	Status string `json:"status"`
	Data   struct {
		TokenID uint64 `json:"token_id"`
		ForSale bool   `json:"for_sale"`
		Price   int64  `json:"price"`
	} `json:"data"`
}

type ListTokensResponse struct {
	Status string     `json:"status"`
	Total  uint64     `json:"total"`
	Data   []TokenDTO `json:"data"`
}

type PayoutDTO struct {
	PayoutID   string  `json:"payout_id"`
	Account    string  `json:"account"`
	Amount     int64   `json:"amount"`
	Kind       string  `json:"kind"`
	TokenID    *uint64 `json:"token_id,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}

type ListPayoutsResponse struct {
	Status string      `json:"status"`
	Data   []PayoutDTO `json:"data"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
