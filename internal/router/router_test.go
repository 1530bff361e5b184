package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-health-journal/internal/adapters/cache/rediscache"
	"pet-health-journal/internal/platform/config"
	"pet-health-journal/internal/router"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

var insightsCfg = config.InsightsConfig{WindowDays: 7, DensityThreshold: 0.70, FreeTextMaxChars: 2000}

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}

type patternsResp struct {
	LoggedDays        int  `json:"logged_days"`
	DensitySufficient bool `json:"density_sufficient"`
	Alerts            []struct {
		PatternType string `json:"pattern_type"`
		AlertLevel  string `json:"alert_level"`
	} `json:"alerts"`
}

func (p patternsResp) has(t string) bool {
	for _, a := range p.Alerts {
		if a.PatternType == t {
			return true
		}
	}
	return false
}

func TestHTTP_EndToEnd_WeekOfDecline(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Insights: insightsCfg}))
	defer ts.Close()

	ownerID := "owner-1"

	// 1) Owner registra perro
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":  "Milo",
		"breed": "mixed",
		"size":  "medium",
		"sex":   "male",
	})

	// 2) Otro usuario no puede verlo
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, "stranger", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for stranger, got %d", st)
		}
	}

	// 3) Una semana con apetito, energía y ánimo bajos
	for i := 6; i >= 0; i-- {
		payload := declineDay(daysAgo(i))
		if i == 0 {
			payload["free_text"] = "She had a seizure in the yard!"
		}
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/checkins", ownerID, payload)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 check-in day -%d, got %d body=%s", i, st, string(body))
		}

		var resp struct {
			CheckIn struct {
				EmergencyFlagged bool `json:"emergency_flagged"`
			} `json:"check_in"`
			Summary struct {
				Type          string   `json:"type"`
				Abnormalities []string `json:"abnormalities"`
			} `json:"summary"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Summary.Type == "" || resp.Summary.Type == "all_normal" {
			t.Fatalf("expected abnormal summary, got %q", resp.Summary.Type)
		}
		if len(resp.Summary.Abnormalities) != 3 {
			t.Fatalf("expected 3 abnormalities, got %v", resp.Summary.Abnormalities)
		}
		if (i == 0) != resp.CheckIn.EmergencyFlagged {
			t.Fatalf("day -%d: unexpected emergency_flagged=%v", i, resp.CheckIn.EmergencyFlagged)
		}
	}

	// 4) Un check-in por día
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/checkins", ownerID, declineDay(daysAgo(3)))
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate date, got %d", st)
		}
	}

	// 5) Patrones
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/patterns", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 patterns, got %d body=%s", st, string(body))
		}
		var p patternsResp
		_ = json.Unmarshal(body, &p)
		if p.LoggedDays != 7 || !p.DensitySufficient {
			t.Fatalf("unexpected density: %+v", p)
		}
		for _, want := range []string{"persistent_decline", "appetite_decline", "energy_decline", "behavioral_change", "multi_symptom_trend"} {
			if !p.has(want) {
				t.Fatalf("expected %s in %s", want, string(body))
			}
		}
	}

	// 6) Alertas abiertas por la consulta de hoy
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/alerts?status=active", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 alerts, got %d body=%s", st, string(body))
		}
		var items []struct {
			PatternType   string `json:"pattern_type"`
			Status        string `json:"status"`
			FirstDetected string `json:"first_detected"`
		}
		_ = json.Unmarshal(body, &items)
		found := false
		for _, a := range items {
			if a.Status != "active" || a.FirstDetected == "" {
				t.Fatalf("unexpected alert %+v", a)
			}
			if a.PatternType == "persistent_decline" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected persistent_decline alert, got %s", string(body))
		}
	}

	// 7) Consistencia: 7 días iguales => 5
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/consistency", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 consistency, got %d body=%s", st, string(body))
		}
		var c struct {
			Score      *int `json:"score"`
			MatchCount int  `json:"match_count"`
		}
		_ = json.Unmarshal(body, &c)
		if c.Score == nil || *c.Score != 5 || c.MatchCount != 7 {
			t.Fatalf("unexpected consistency %s", string(body))
		}
	}

	// 8) Resumen del día y fecha sin check-in
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/checkins/"+daysAgo(0)+"/summary", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID+"/checkins/"+daysAgo(30), ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 missing day, got %d", st)
		}
	}

	// 9) Lista más reciente primero
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/checkins?limit=2", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var items []struct {
			CheckInDate string `json:"check_in_date"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 2 || items[0].CheckInDate != daysAgo(0) || items[1].CheckInDate != daysAgo(1) {
			t.Fatalf("unexpected list %s", string(body))
		}
	}
}

func TestHTTP_ConsistencyInsufficientHistory(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Insights: insightsCfg}))
	defer ts.Close()

	petID := createPet(t, ts.URL, "owner-1", map[string]any{"name": "Luna"})
	for i := 0; i < 4; i++ {
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/checkins", "owner-1", normalDay(daysAgo(i)))
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/consistency", "owner-1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var c struct {
		Score  *int   `json:"score"`
		Reason string `json:"reason"`
	}
	_ = json.Unmarshal(body, &c)
	if c.Score != nil || c.Reason != "insufficient_history" {
		t.Fatalf("unexpected consistency %s", string(body))
	}

	// 4/7 < 0.70: sin tendencias
	st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/patterns", "owner-1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var p patternsResp
	_ = json.Unmarshal(body, &p)
	if p.DensitySufficient || len(p.Alerts) != 0 {
		t.Fatalf("unexpected patterns %s", string(body))
	}
}

func TestHTTP_Validation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Insights: insightsCfg}))
	defer ts.Close()

	// sin usuario
	if st, _ := doReq(t, ts.URL, "GET", "/pets", "", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", st)
	}

	petID := createPet(t, ts.URL, "owner-1", map[string]any{"name": "Milo"})

	bad := normalDay(daysAgo(0))
	bad["vomiting"] = "sometimes"
	if st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/checkins", "owner-1", bad); st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid enum, got %d", st)
	}

	future := normalDay(time.Now().AddDate(0, 0, 2).Format("2006-01-02"))
	if st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/checkins", "owner-1", future); st != http.StatusBadRequest {
		t.Fatalf("expected 400 future date, got %d", st)
	}

	if st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/patterns?date=yesterday", "owner-1", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad date, got %d", st)
	}

	if st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/alerts?status=open", "owner-1", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad status, got %d", st)
	}

	if st, _ := doReq(t, ts.URL, "GET", "/pets/does-not-exist/patterns", "owner-1", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown pet, got %d", st)
	}
}

func TestHTTP_EmergencyDetect(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Insights: insightsCfg}))
	defer ts.Close()

	cases := map[string]bool{
		"She ate some rat bait from the garage": true,
		"can't breathe properly":                true,
		"vomiting, diarrhea and very lethargic": true,
		"a bit tired after the long walk":       false,
		"":                                      false,
	}
	for text, want := range cases {
		st, body := doReq(t, ts.URL, "POST", "/emergency/detect", "owner-1", map[string]any{"text": text})
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var res struct {
			IsEmergency     bool     `json:"is_emergency"`
			MatchedPatterns []string `json:"matched_patterns"`
		}
		_ = json.Unmarshal(body, &res)
		if res.IsEmergency != want {
			t.Fatalf("%q: expected is_emergency=%v, got %s", text, want, string(body))
		}
		if res.MatchedPatterns == nil {
			t.Fatalf("%q: matched_patterns must be an array, got %s", text, string(body))
		}
	}
}

func TestHTTP_PatternsCachedInRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Insights: insightsCfg,
		Cache:    rediscache.New(client, time.Minute),
	}))
	defer ts.Close()

	petID := createPet(t, ts.URL, "owner-1", map[string]any{"name": "Milo"})
	for i := 1; i <= 5; i++ {
		if st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/checkins", "owner-1", normalDay(daysAgo(i))); st != http.StatusCreated {
			t.Fatalf("expected 201, got %d", st)
		}
	}

	if st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/patterns", "owner-1", nil); st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	key := "insights:" + petID + ":patterns:" + daysAgo(0)
	if !mr.Exists(key) {
		t.Fatalf("expected cached key %s, have %v", key, mr.Keys())
	}

	// un check-in nuevo invalida el cache de la mascota
	if st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/checkins", "owner-1", normalDay(daysAgo(0))); st != http.StatusCreated {
		t.Fatalf("expected 201, got %d", st)
	}
	if mr.Exists(key) {
		t.Fatalf("expected %s invalidated", key)
	}
}

func declineDay(date string) map[string]any {
	day := normalDay(date)
	day["appetite"] = "less"
	day["energy_level"] = "low"
	day["mood"] = "quiet"
	return day
}

func normalDay(date string) map[string]any {
	return map[string]any{
		"check_in_date": date,
		"appetite":      "normal",
		"water_intake":  "normal",
		"energy_level":  "normal",
		"stool_quality": "normal",
		"vomiting":      "none",
		"mobility":      "normal",
		"mood":          "normal",
	}
}

func TestHTTP_UpdatePetProfile(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Insights: insightsCfg}))
	defer ts.Close()

	petID := createPet(t, ts.URL, "owner-1", map[string]any{"name": "Milo", "breed": "beagle", "birth_date": "2020-05-01"})

	st, body := doReq(t, ts.URL, "PATCH", "/pets/"+petID, "owner-1", map[string]any{"size": "medium", "birth_date": nil})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	var p struct {
		Name      string  `json:"name"`
		Breed     string  `json:"breed"`
		Size      string  `json:"size"`
		BirthDate *string `json:"birth_date"`
	}
	_ = json.Unmarshal(body, &p)
	if p.Name != "Milo" || p.Breed != "beagle" || p.Size != "medium" || p.BirthDate != nil {
		t.Fatalf("unexpected pet %s", string(body))
	}

	if st, _ := doReq(t, ts.URL, "PATCH", "/pets/"+petID, "intruder", map[string]any{"name": "Rex"}); st != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "PATCH", "/pets/"+petID, "owner-1", map[string]any{"birth_date": "05/01/2020"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad birth_date, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "PATCH", "/pets/"+petID, "owner-1", map[string]any{"size": "huge"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad size, got %d", st)
	}
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
