package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWeightedAverage_FirstPurchase(t *testing.T) {
	stock, avg := weightedAverage(dec("0"), dec("0"), dec("10"), dec("120"))

	if !stock.Equal(dec("10")) {
		t.Fatalf("stock = %s, want 10", stock)
	}
	if !avg.Equal(dec("120")) {
		t.Fatalf("avg = %s, want 120", avg)
	}
}

func TestWeightedAverage_MergesBatches(t *testing.T) {
	// 5kg@100 在库，再入 5kg@200 → 平均价150
	stock, avg := weightedAverage(dec("5"), dec("100"), dec("5"), dec("200"))

	if !stock.Equal(dec("10")) {
		t.Fatalf("stock = %s, want 10", stock)
	}
	if !avg.Equal(dec("150")) {
		t.Fatalf("avg = %s, want 150", avg)
	}
}

func TestWeightedAverage_SmallBatchBarelyMovesPrice(t *testing.T) {
	stock, avg := weightedAverage(dec("1000"), dec("50"), dec("1"), dec("100"))

	if !stock.Equal(dec("1001")) {
		t.Fatalf("stock = %s, want 1001", stock)
	}
	want := dec("50050").Div(dec("1001"))
	if !avg.Equal(want) {
		t.Fatalf("avg = %s, want %s", avg, want)
	}
	// 加权平均落在两批单价之间
	if avg.LessThan(dec("50")) || avg.GreaterThan(dec("100")) {
		t.Fatalf("avg %s out of [50, 100]", avg)
	}
}
