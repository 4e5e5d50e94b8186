package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestInstallmentFlow_CreateListDelete(t *testing.T) {
	app := setupApp(t)

	// A 120.00 purchase in 3 installments expands into 3 records of 40.00.
	rec := app.request("POST", "/api/v1/profiles/personal/transactions",
		`{"type":"expense","amount":"120.00","description":"New TV","category":"shopping","payment_method":"credit_card","card_operator":"Visa","installments":3,"due_date":"2024-01-31"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := parseJSON(t, rec)["transactions"].([]interface{})
	if len(created) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(created))
	}

	first := created[0].(map[string]interface{})
	firstID := first["id"].(string)
	if _, hasParent := first["parent_transaction_id"]; hasParent {
		t.Error("expected first installment without parent")
	}
	for i := 1; i < 3; i++ {
		record := created[i].(map[string]interface{})
		if record["parent_transaction_id"] != firstID {
			t.Errorf("installment %d: expected parent %q, got %v", i+1, firstID, record["parent_transaction_id"])
		}
		if record["amount"] != "40" && record["amount"] != "40.00" {
			t.Errorf("installment %d: expected amount 40, got %v", i+1, record["amount"])
		}
	}

	// All three show up in the listing.
	rec = app.request("GET", "/api/v1/profiles/personal/transactions", "")
	listed := parseJSON(t, rec)["transactions"].([]interface{})
	if len(listed) != 3 {
		t.Fatalf("expected 3 listed records, got %d", len(listed))
	}

	// The series is invisible to the other profile.
	rec = app.request("GET", "/api/v1/profiles/family/transactions", "")
	if other := parseJSON(t, rec)["transactions"].([]interface{}); len(other) != 0 {
		t.Errorf("expected family profile empty, got %d records", len(other))
	}

	// Deleting the first installment cascades over the whole series.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/profiles/personal/transactions/%s", firstID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d: %s", rec.Code, rec.Body.String())
	}
	if deleted := parseJSON(t, rec)["deleted"].(float64); deleted != 3 {
		t.Errorf("expected 3 deleted, got %.0f", deleted)
	}

	rec = app.request("GET", "/api/v1/profiles/personal/transactions", "")
	if listed := parseJSON(t, rec)["transactions"].([]interface{}); len(listed) != 0 {
		t.Errorf("expected empty ledger after cascade, got %d records", len(listed))
	}
}

func TestInstallmentFlow_DeleteMiddleInstallment(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/profiles/personal/transactions",
		`{"type":"expense","amount":"90.00","description":"Headphones","category":"shopping","payment_method":"credit_card","card_operator":"Mastercard","installments":3}`)
	created := parseJSON(t, rec)["transactions"].([]interface{})
	secondID := created[1].(map[string]interface{})["id"].(string)

	rec = app.request("DELETE", fmt.Sprintf("/api/v1/profiles/personal/transactions/%s", secondID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted := parseJSON(t, rec)["deleted"].(float64); deleted != 1 {
		t.Errorf("expected 1 deleted, got %.0f", deleted)
	}

	rec = app.request("GET", "/api/v1/profiles/personal/transactions", "")
	if listed := parseJSON(t, rec)["transactions"].([]interface{}); len(listed) != 2 {
		t.Errorf("expected 2 records left, got %d", len(listed))
	}
}

func TestInstallmentFlow_UpdateAndSummary(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/profiles/personal/transactions",
		`{"type":"income","amount":"300.00","description":"Salary","category":"salary","payment_method":"pix"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/profiles/personal/transactions",
		`{"type":"expense","amount":"45.00","description":"Dinner","category":"food","payment_method":"cash"}`)
	created := parseJSON(t, rec)["transactions"].([]interface{})
	expenseID := created[0].(map[string]interface{})["id"].(string)

	// Fix the recorded amount.
	rec = app.request("PUT", fmt.Sprintf("/api/v1/profiles/personal/transactions/%s", expenseID),
		`{"amount":"50.00"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/profiles/personal/summary", "")
	summary := parseJSON(t, rec)
	if summary["total_income"] != "300" && summary["total_income"] != "300.00" {
		t.Errorf("expected income 300, got %v", summary["total_income"])
	}
	if summary["total_expenses"] != "50" && summary["total_expenses"] != "50.00" {
		t.Errorf("expected expenses 50, got %v", summary["total_expenses"])
	}
	if summary["balance"] != "250" && summary["balance"] != "250.00" {
		t.Errorf("expected balance 250, got %v", summary["balance"])
	}
	if summary["transaction_count"].(float64) != 2 {
		t.Errorf("expected count 2, got %v", summary["transaction_count"])
	}
}
