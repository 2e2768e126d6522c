package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTokenIssuance(t *testing.T) {
	app := newTestApp(t)

	// known account gets a token (covered by bearer)
	_ = bearer(t, app, "bithi@bazar.test")

	// unknown account: 403 with an empty accessToken, no error body
	resp, body := doJSON(t, app, "GET", "/jwt?email=nobody@bazar.test", nil, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403, got %d", resp.StatusCode)
	}
	if tok, okTok := body["accessToken"].(string); !okTok || tok != "" {
		t.Fatalf("want empty accessToken, got %v", body)
	}
}

// Auth failures answer with bare 401/403; everything else rides on 200 with
// status:false. The asymmetry is the client contract.
func TestGateStatusAsymmetry(t *testing.T) {
	app := newTestApp(t)

	// no header -> 401 with the bare body
	resp, err := app.Test(httptest.NewRequest("GET", "/my-orders?email=bithi@bazar.test", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing header: want 401, got %d", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	if string(raw) != "Unauthorized access" {
		t.Fatalf("want bare body, got %q", raw)
	}

	// garbage token -> 403
	resp, _ = doJSON(t, app, "GET", "/my-orders?email=bithi@bazar.test", nil, "Bearer garbage")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("bad token: want 403, got %d", resp.StatusCode)
	}

	// valid token but someone else's email -> 403
	tok := bearer(t, app, "bithi@bazar.test")
	resp, body := doJSON(t, app, "GET", "/my-orders?email=selim@bazar.test", nil, tok)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("self mismatch: want 403, got %d", resp.StatusCode)
	}
	if body["message"] != "Forbidden access" {
		t.Fatalf("want Forbidden access message, got %v", body)
	}

	// matching email -> 200 with the envelope
	resp, body = doJSON(t, app, "GET", "/my-orders?email=bithi@bazar.test", nil, tok)
	if resp.StatusCode != http.StatusOK || body["status"] != true {
		t.Fatalf("self read failed: %d %v", resp.StatusCode, body)
	}
}

func TestRoleProbes(t *testing.T) {
	app := newTestApp(t)

	_, body := doJSON(t, app, "GET", "/user/admin/admin@bazar.test", nil, "")
	if body["isAdmin"] != true {
		t.Fatalf("admin probe: %v", body)
	}
	_, body = doJSON(t, app, "GET", "/user/admin/bithi@bazar.test", nil, "")
	if body["isAdmin"] != false {
		t.Fatalf("buyer as admin: %v", body)
	}
	_, body = doJSON(t, app, "GET", "/user/seller/selim@bazar.test", nil, "")
	if body["isSeller"] != true || body["isVerified"] != false {
		t.Fatalf("seller probe: %v", body)
	}
	_, body = doJSON(t, app, "GET", "/user/buyer/nobody@bazar.test", nil, "")
	if body["isBuyer"] != false {
		t.Fatalf("unknown email must probe false: %v", body)
	}
}

func TestAdminVerifiesSeller(t *testing.T) {
	app := newTestApp(t)

	// non-admin blocked
	buyerTok := bearer(t, app, "bithi@bazar.test")
	resp, _ := doJSON(t, app, "PATCH", "/seller/u-selim", nil, buyerTok)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("buyer verifying seller: want 403, got %d", resp.StatusCode)
	}

	adminTok := bearer(t, app, "admin@bazar.test")
	resp, body := doJSON(t, app, "PATCH", "/seller/u-selim", nil, adminTok)
	if resp.StatusCode != http.StatusOK || body["status"] != true {
		t.Fatalf("admin verify failed: %d %v", resp.StatusCode, body)
	}

	_, body = doJSON(t, app, "GET", "/user/seller/selim@bazar.test", nil, "")
	if body["isVerified"] != true {
		t.Fatalf("verification not visible: %v", body)
	}
}
