package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/artonus/pos-api/internal/core/ports"
)

func TestBuildFilter_Empty(t *testing.T) {
	query := buildFilter(ports.ListBookingsFilter{})
	if len(query) != 0 {
		t.Fatalf("zero filter must match everything, got %v", query)
	}
}

func TestBuildFilter_CustomerName(t *testing.T) {
	query := buildFilter(ports.ListBookingsFilter{CustomerName: "ann"})

	clause, ok := query["customer_name"].(bson.M)
	if !ok {
		t.Fatalf("expected regex clause, got %v", query["customer_name"])
	}
	if clause["$regex"] != "ann" {
		t.Fatalf("unexpected pattern: %v", clause["$regex"])
	}
	if clause["$options"] != "i" {
		t.Fatalf("match must be case-insensitive, got options %v", clause["$options"])
	}
}

func TestBuildFilter_Status(t *testing.T) {
	query := buildFilter(ports.ListBookingsFilter{Status: "Confirmed"})
	if query["status"] != "Confirmed" {
		t.Fatalf("expected exact status match, got %v", query["status"])
	}
	if len(query) != 1 {
		t.Fatalf("unexpected extra clauses: %v", query)
	}
}

func TestBuildFilter_DateRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	query := buildFilter(ports.ListBookingsFilter{From: &from, To: &to})

	clause, ok := query["appointment_date"].(bson.M)
	if !ok {
		t.Fatalf("expected range clause, got %v", query["appointment_date"])
	}
	if got := clause["$gte"].(time.Time); !got.Equal(from) {
		t.Fatalf("unexpected lower bound: %v", got)
	}
	if got := clause["$lte"].(time.Time); !got.Equal(to) {
		t.Fatalf("unexpected upper bound: %v", got)
	}
}

func TestBuildFilter_SingleBound(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	query := buildFilter(ports.ListBookingsFilter{From: &from})

	clause := query["appointment_date"].(bson.M)
	if _, has := clause["$lte"]; has {
		t.Fatalf("open-ended range must not set an upper bound: %v", clause)
	}
	if got := clause["$gte"].(time.Time); !got.Equal(from) {
		t.Fatalf("unexpected lower bound: %v", got)
	}
}

func TestBuildFilter_Combined(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	query := buildFilter(ports.ListBookingsFilter{
		CustomerName: "ann",
		Status:       "Pending",
		From:         &from,
	})

	if len(query) != 3 {
		t.Fatalf("expected three clauses, got %v", query)
	}
}
