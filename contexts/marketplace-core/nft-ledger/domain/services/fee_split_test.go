package services

import "testing"

func TestSplitSalePriceFloorsEachCut(t *testing.T) {
	split := SplitSalePrice(10_000_000, 5, 2)

	if split.Royalty != 500_000 {
		t.Fatalf("expected royalty 500000, got %d", split.Royalty)
	}
	if split.PlatformFee != 200_000 {
		t.Fatalf("expected platform fee 200000, got %d", split.PlatformFee)
	}
	if split.SellerAmount != 9_300_000 {
		t.Fatalf("expected seller amount 9300000, got %d", split.SellerAmount)
	}
}

func TestSplitSalePriceRemainderGoesToSeller(t *testing.T) {
	// 1 unit at 5%/2% floors both cuts to zero; the seller keeps everything.
	split := SplitSalePrice(1, 5, 2)

	if split.Royalty != 0 || split.PlatformFee != 0 {
		t.Fatalf("expected zero cuts, got royalty=%d fee=%d", split.Royalty, split.PlatformFee)
	}
	if split.SellerAmount != 1 {
		t.Fatalf("expected seller amount 1, got %d", split.SellerAmount)
	}
}

func TestSplitSalePriceConservesTotal(t *testing.T) {
	prices := []int64{1, 3, 99, 101, 1_000_001, 9_999_999_999}
	for _, price := range prices {
		split := SplitSalePrice(price, 7, 3)
		total := split.Royalty + split.PlatformFee + split.SellerAmount
		if total != price {
			t.Fatalf("price %d: split sums to %d", price, total)
		}
	}
}

func TestSplitSalePriceZeroPercents(t *testing.T) {
	split := SplitSalePrice(12_345, 0, 0)
	if split.Royalty != 0 || split.PlatformFee != 0 || split.SellerAmount != 12_345 {
		t.Fatalf("unexpected split: %+v", split)
	}
}
