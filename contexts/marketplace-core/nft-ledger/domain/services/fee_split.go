package services

// SaleSplit is the three-way division of a sale price. The parts always sum
// exactly to the price: royalty and platform fee use truncating division, so
// any rounding remainder stays with the seller.
type SaleSplit struct {
	Royalty      int64
	PlatformFee  int64
	SellerAmount int64
}

func SplitSalePrice(price int64, royaltyPercent int, platformFeePercent int) SaleSplit {
	royalty := price * int64(royaltyPercent) / 100
	platformFee := price * int64(platformFeePercent) / 100
	return SaleSplit{
		Royalty:      royalty,
		PlatformFee:  platformFee,
		SellerAmount: price - royalty - platformFee,
	}
}
