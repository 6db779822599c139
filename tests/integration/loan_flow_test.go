package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestLoanPrepaymentFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "borrower@example.com", "password123")

	date := time.Now().Format(time.RFC3339)
	body := fmt.Sprintf(`{"loan_name":"Home Loan","principal_amount":2500000,"outstanding_amount":2000000,"interest_rate":8.5,"emi_amount":25000,"tenure_months":240,"start_date":%q}`, date)
	rec := app.request("POST", "/api/v1/loans", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create loan failed: %d %s", rec.Code, rec.Body.String())
	}
	loan := parseJSON(t, rec)["loan"].(map[string]interface{})
	loanID := int(loan["id"].(float64))

	// Simulate a lump-sum prepayment. The stored loan is untouched.
	rec = app.request("POST", fmt.Sprintf("/api/v1/loans/%d/prepayment", loanID), `{"prepayment_amount":500000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("prepayment simulation failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)["prepayment"].(map[string]interface{})
	if got := result["newOutstanding"].(float64); got != 1500000 {
		t.Errorf("expected new outstanding 1500000, got %v", got)
	}
	if got := result["tenureReduction"].(float64); got <= 0 {
		t.Errorf("expected positive tenure reduction, got %v", got)
	}
	if got := result["interestSaved"].(float64); got < 0 {
		t.Errorf("expected non-negative interest saved, got %v", got)
	}

	rec = app.request("GET", fmt.Sprintf("/api/v1/loans/%d", loanID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get loan failed: %d %s", rec.Code, rec.Body.String())
	}
	stored := parseJSON(t, rec)["loan"].(map[string]interface{})
	if got := stored["outstanding_amount"].(float64); got != 2000000 {
		t.Errorf("simulation must not mutate the loan, outstanding is %v", got)
	}
}

func TestLoanRejectsNonAmortizingEMI(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "underwater@example.com", "password123")

	// Monthly interest on 2000000 at 8.5% is about 14167; an EMI of 14000
	// never reduces the balance.
	date := time.Now().Format(time.RFC3339)
	body := fmt.Sprintf(`{"loan_name":"Bad Loan","principal_amount":2500000,"outstanding_amount":2000000,"interest_rate":8.5,"emi_amount":14000,"tenure_months":240,"start_date":%q}`, date)
	rec := app.request("POST", "/api/v1/loans", body, token)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for non-amortizing EMI, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestSipProjectionFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "investor@example.com", "password123")

	date := time.Now().Format(time.RFC3339)
	body := fmt.Sprintf(`{"sip_name":"Index Fund","category":"LARGE_CAP","monthly_amount":10000,"current_value":200000,"allocation_percentage":60,"expected_return_rate":12,"start_date":%q}`, date)
	rec := app.request("POST", "/api/v1/sips", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create sip failed: %d %s", rec.Code, rec.Body.String())
	}
	sip := parseJSON(t, rec)["sip"].(map[string]interface{})
	sipID := int(sip["id"].(float64))

	// Record a contribution; the ledger grows but the SIP's market value
	// stays whatever it was.
	body = fmt.Sprintf(`{"amount":10000,"investment_date":%q}`, date)
	rec = app.request("POST", fmt.Sprintf("/api/v1/sips/%d/investments", sipID), body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record investment failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", fmt.Sprintf("/api/v1/sips/%d", sipID), "", token)
	updated := parseJSON(t, rec)["sip"].(map[string]interface{})
	if got := updated["current_value"].(float64); got != 200000 {
		t.Errorf("expected current value unchanged at 200000, got %v", got)
	}

	// A paused SIP must not contribute to the projection.
	body = fmt.Sprintf(`{"sip_name":"Old Fund","category":"DEBT","monthly_amount":50000,"current_value":1000000,"expected_return_rate":7,"start_date":%q}`, date)
	rec = app.request("POST", "/api/v1/sips", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create second sip failed: %d %s", rec.Code, rec.Body.String())
	}
	second := parseJSON(t, rec)["sip"].(map[string]interface{})
	secondID := int(second["id"].(float64))

	rec = app.request("PUT", fmt.Sprintf("/api/v1/sips/%d", secondID), `{"is_active":false}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("deactivate sip failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/sips/projection", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get projection failed: %d %s", rec.Code, rec.Body.String())
	}
	projection := parseJSON(t, rec)["projection"].(map[string]interface{})
	if got := projection["currentPortfolioValue"].(float64); got != 200000 {
		t.Errorf("expected portfolio value 200000 (inactive SIP excluded), got %v", got)
	}
	if got := projection["monthlyInvestment"].(float64); got != 10000 {
		t.Errorf("expected monthly investment 10000, got %v", got)
	}
	if got := projection["projectionYears"].(float64); got != 10 {
		t.Errorf("expected default projection horizon of 10 years, got %v", got)
	}
	if projection["projectedValue"].(float64) <= projection["totalInvested"].(float64) {
		t.Errorf("expected projected value to exceed total invested at a positive return rate")
	}
}
