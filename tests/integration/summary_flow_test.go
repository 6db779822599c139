package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestSummaryGenerationFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "summary@example.com", "password123")
	app.completeOnboarding(t, token, 100000, 600000)

	now := time.Now()
	date := now.Format(time.RFC3339)

	// Fixed rent plus a variable grocery run for the current month.
	body := fmt.Sprintf(`{"amount":12000,"category":"housing","description":"rent","expense_date":%q,"is_fixed":true}`, date)
	rec := app.request("POST", "/api/v1/expenses", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create fixed expense failed: %d %s", rec.Code, rec.Body.String())
	}
	body = fmt.Sprintf(`{"amount":8000,"category":"food","description":"groceries","expense_date":%q}`, date)
	rec = app.request("POST", "/api/v1/expenses", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create variable expense failed: %d %s", rec.Code, rec.Body.String())
	}

	// An active loan contributes its EMI to fixed expenses.
	body = fmt.Sprintf(`{"loan_name":"Home Loan","principal_amount":2500000,"outstanding_amount":2000000,"interest_rate":8.5,"emi_amount":25000,"tenure_months":240,"start_date":%q}`, date)
	rec = app.request("POST", "/api/v1/loans", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create loan failed: %d %s", rec.Code, rec.Body.String())
	}

	// Only contributions recorded in the month count as investments.
	body = fmt.Sprintf(`{"sip_name":"Index Fund","category":"LARGE_CAP","monthly_amount":10000,"current_value":200000,"allocation_percentage":50,"expected_return_rate":12,"start_date":%q}`, date)
	rec = app.request("POST", "/api/v1/sips", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create sip failed: %d %s", rec.Code, rec.Body.String())
	}
	sip := parseJSON(t, rec)["sip"].(map[string]interface{})
	sipID := int(sip["id"].(float64))

	body = fmt.Sprintf(`{"amount":10000,"investment_date":%q}`, date)
	rec = app.request("POST", fmt.Sprintf("/api/v1/sips/%d/investments", sipID), body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("record contribution failed: %d %s", rec.Code, rec.Body.String())
	}

	// First access generates the summary from live records.
	rec = app.request("GET", "/api/v1/summary/current", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get current summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})

	if got := summary["total_income"].(float64); got != 100000 {
		t.Errorf("expected income 100000, got %v", got)
	}
	if got := summary["fixed_expenses"].(float64); got != 37000 {
		t.Errorf("expected fixed expenses 37000 (12000 rent + 25000 EMI), got %v", got)
	}
	if got := summary["variable_expenses"].(float64); got != 8000 {
		t.Errorf("expected variable expenses 8000, got %v", got)
	}
	if got := summary["total_investments"].(float64); got != 10000 {
		t.Errorf("expected investments 10000, got %v", got)
	}
	if got := summary["insurance"].(float64); got != 2000 {
		t.Errorf("expected default insurance 2000, got %v", got)
	}
	if got := summary["savings_rate"].(float64); got != 55 {
		t.Errorf("expected savings rate 55, got %v", got)
	}
	if got := summary["investment_rate"].(float64); got != 10 {
		t.Errorf("expected investment rate 10, got %v", got)
	}
	// 30 (savings >= 20%) + 20 (investment >= 10%) + 40 (6 months coverage) = 90.
	if got := summary["health_score"].(string); got != "EXCELLENT" {
		t.Errorf("expected EXCELLENT, got %v", got)
	}

	// A second read returns the stored row, not a regenerated one.
	firstID := summary["id"].(float64)
	rec = app.request("GET", fmt.Sprintf("/api/v1/summary?month=%d&year=%d", int(now.Month()), now.Year()), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get summary failed: %d %s", rec.Code, rec.Body.String())
	}
	again := parseJSON(t, rec)["summary"].(map[string]interface{})
	if again["id"].(float64) != firstID {
		t.Errorf("expected the stored summary row to be returned on the second read")
	}

	// History contains exactly one period.
	rec = app.request("GET", "/api/v1/summary/history", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get history failed: %d %s", rec.Code, rec.Body.String())
	}
	summaries := parseJSON(t, rec)["summaries"].([]interface{})
	if len(summaries) != 1 {
		t.Errorf("expected 1 summary in history, got %d", len(summaries))
	}
}

func TestSaveSummaryUpsertFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "upsert@example.com", "password123")

	body := `{"month":3,"year":2025,"total_income":50000,"fixed_expenses":20000,"variable_expenses":10000,"total_investments":5000,"emergency_fund":100000,"insurance":1500}`
	rec := app.request("POST", "/api/v1/summary", body, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("save summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if got := summary["savings_rate"].(float64); got != 40 {
		t.Errorf("expected derived savings rate 40, got %v", got)
	}

	// Saving the same period again replaces the figures in place.
	body = `{"month":3,"year":2025,"total_income":50000,"fixed_expenses":25000,"variable_expenses":15000,"total_investments":5000,"emergency_fund":100000,"insurance":1500}`
	rec = app.request("POST", "/api/v1/summary", body, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("second save failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/summary/history", "", token)
	summaries := parseJSON(t, rec)["summaries"].([]interface{})
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary after upsert, got %d", len(summaries))
	}
	updated := summaries[0].(map[string]interface{})
	if got := updated["fixed_expenses"].(float64); got != 25000 {
		t.Errorf("expected updated fixed expenses 25000, got %v", got)
	}
	if got := updated["savings_rate"].(float64); got != 20 {
		t.Errorf("expected re-derived savings rate 20, got %v", got)
	}
}
