package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vizigoBack/internal/models"
	"vizigoBack/internal/repositories"
	"vizigoBack/internal/services"
)

const validRental = `{"name":"Asha","number":"9845000000","bike_name":"Splendor Plus","from_date":"2026-11-05","to_date":"2026-11-01"}`

func newRentalHandler(store repositories.Store) *RentalHandler {
	return &RentalHandler{
		Service:  &services.RentalService{RentalRepo: &repositories.RentalRepository{Store: store}},
		ErrorLog: log.New(io.Discard, "", 0),
	}
}

func TestCreateRental(t *testing.T) {
	store := repositories.NewMemoryStore()
	h := newRentalHandler(store)

	rec := httptest.NewRecorder()
	h.CreateRental(rec, httptest.NewRequest(http.MethodPost, "/rental/", strings.NewReader(validRental)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp models.CreateRentalResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Rental request created successfully" || resp.RentalID == "" {
		t.Fatalf("unexpected response %+v", resp)
	}

	docs, _ := store.GetAll(context.Background(), repositories.RentalRequestsCollection)
	if _, ok := docs[resp.RentalID]; !ok {
		t.Fatalf("rental %q not stored", resp.RentalID)
	}
}

func TestCreateRentalValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantLoc string
	}{
		{"missing number", `{"name":"Asha","bike_name":"X","from_date":"2026-11-01","to_date":"2026-11-02"}`, "number"},
		{"bad from_date", `{"name":"Asha","number":"1","bike_name":"X","from_date":"tomorrow","to_date":"2026-11-02"}`, "from_date"},
		{"null name", `{"name":null,"number":"1","bike_name":"X","from_date":"2026-11-01","to_date":"2026-11-02"}`, "name"},
		{"empty from_date", `{"name":"Asha","number":"1","bike_name":"X","from_date":"","to_date":"2026-11-02"}`, "from_date"},
		{"missing to_date", `{"name":"Asha","number":"1","bike_name":"X","from_date":"2026-11-01"}`, "to_date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRentalHandler(repositories.NewMemoryStore()).CreateRental(rec, httptest.NewRequest(http.MethodPost, "/rental/", strings.NewReader(tc.body)))
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d", rec.Code)
			}
			issues := decodeIssues(t, rec.Body)
			if len(issues) != 1 || issues[0].Loc[1] != tc.wantLoc {
				t.Fatalf("unexpected issues %+v", issues)
			}
		})
	}
}

func TestCreateRentalAcceptsEmptyName(t *testing.T) {
	store := repositories.NewMemoryStore()
	body := strings.Replace(validRental, `"Asha"`, `""`, 1)

	rec := httptest.NewRecorder()
	newRentalHandler(store).CreateRental(rec, httptest.NewRequest(http.MethodPost, "/rental/", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp models.CreateRentalResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	docs, _ := store.GetAll(context.Background(), repositories.RentalRequestsCollection)
	var stored models.RentalRecord
	if err := json.Unmarshal(docs[resp.RentalID], &stored); err != nil {
		t.Fatalf("decode stored rental: %v", err)
	}
	if stored.Name != "" || stored.BikeName != "Splendor Plus" {
		t.Fatalf("unexpected stored rental %+v", stored)
	}
}

func TestCreateRentalStoreFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	newRentalHandler(brokenStore{err: errors.New("quota exceeded")}).CreateRental(rec, httptest.NewRequest(http.MethodPost, "/rental/", strings.NewReader(validRental)))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}
