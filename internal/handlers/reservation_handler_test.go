package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aaron23010705/vehicle-service-api/internal/audit"
	"github.com/Aaron23010705/vehicle-service-api/internal/models"
	ucReservation "github.com/Aaron23010705/vehicle-service-api/internal/usecase/reservation"
)

// ======================================================
// FAKES / SETUP
// ======================================================

type reservationRepoStub struct {
	reservations map[primitive.ObjectID]*models.Reservation
	expandWith   *models.Client
}

func newReservationRepoStub(seed ...*models.Reservation) *reservationRepoStub {
	s := &reservationRepoStub{reservations: map[primitive.ObjectID]*models.Reservation{}}
	for _, rv := range seed {
		if rv.ID.IsZero() {
			rv.ID = primitive.NewObjectID()
		}
		s.reservations[rv.ID] = rv
	}
	return s
}

func (s *reservationRepoStub) expand(rv models.Reservation) models.Reservation {
	rv.Client = s.expandWith
	return rv
}

func (s *reservationRepoStub) List(ctx context.Context) ([]models.Reservation, error) {
	out := []models.Reservation{}
	for _, rv := range s.reservations {
		out = append(out, s.expand(*rv))
	}
	return out, nil
}

func (s *reservationRepoStub) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	if rv, ok := s.reservations[id]; ok {
		expanded := s.expand(*rv)
		return &expanded, nil
	}
	return nil, nil
}

func (s *reservationRepoStub) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := s.reservations[id]
	return ok, nil
}

func (s *reservationRepoStub) Insert(ctx context.Context, rv *models.Reservation) error {
	rv.ID = primitive.NewObjectID()
	copied := *rv
	s.reservations[rv.ID] = &copied
	return nil
}

func (s *reservationRepoStub) Update(ctx context.Context, id primitive.ObjectID, rv *models.Reservation) (*models.Reservation, error) {
	existing, ok := s.reservations[id]
	if !ok {
		return nil, nil
	}
	existing.ClientID = rv.ClientID
	existing.Vehicle = rv.Vehicle
	existing.Service = rv.Service
	existing.Status = rv.Status
	expanded := s.expand(*existing)
	return &expanded, nil
}

func (s *reservationRepoStub) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(s.reservations, id)
	return nil
}

func newReservationRouter(repo *reservationRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dispatcher := audit.NewDispatcher(noopSink{})

	h := NewReservationHandler(
		ucReservation.NewListReservations(repo),
		ucReservation.NewGetReservation(repo),
		ucReservation.NewCreateReservation(repo, dispatcher),
		ucReservation.NewUpdateReservation(repo, dispatcher),
		ucReservation.NewDeleteReservation(repo, dispatcher),
	)

	r := gin.New()
	reservation := r.Group("/api/reservation")
	{
		reservation.GET("", h.List)
		reservation.POST("", h.Create)
		reservation.GET("/:id", h.Get)
		reservation.PUT("/:id", h.Update)
		reservation.DELETE("/:id", h.Delete)
	}
	return r
}

func validReservationBody(clientID string) string {
	return `{
		"clientId": "` + clientID + `",
		"vehicle": "Toyota Corolla 2019",
		"service": "Oil change",
		"status": "PENDING"
	}`
}

// ======================================================
// TESTS
// ======================================================

func TestReservationCreateReturns201(t *testing.T) {
	repo := newReservationRepoStub()
	r := newReservationRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/reservation",
		validReservationBody(primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Reservation saved successfully", decodeBody(t, w)["message"])

	for _, rv := range repo.reservations {
		assert.Equal(t, "pending", rv.Status, "status stored lowercased")
	}
}

func TestReservationCreateBadClientID(t *testing.T) {
	r := newReservationRouter(newReservationRepoStub())

	w := doJSON(t, r, http.MethodPost, "/api/reservation", validReservationBody("nope"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid client ID format", decodeBody(t, w)["message"])
}

func TestReservationCreateInvalidStatus(t *testing.T) {
	r := newReservationRouter(newReservationRepoStub())

	body := `{
		"clientId": "` + primitive.NewObjectID().Hex() + `",
		"vehicle": "Toyota",
		"service": "Oil change",
		"status": "archived"
	}`

	w := doJSON(t, r, http.MethodPost, "/api/reservation", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t,
		"Status must be one of: pending, confirmed, in-progress, completed, cancelled",
		decodeBody(t, w)["message"])
}

func TestReservationListExpandsClient(t *testing.T) {
	seed := &models.Reservation{Vehicle: "Toyota", Service: "Oil change", Status: "pending"}
	repo := newReservationRepoStub(seed)
	repo.expandWith = &models.Client{Name: "John Doe", Email: "john@example.com"}
	r := newReservationRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/api/reservation", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	client, ok := list[0]["client"].(map[string]any)
	require.True(t, ok, "client reference must be expanded")
	assert.Equal(t, "John Doe", client["name"])
	assert.NotContains(t, client, "password")
}

func TestReservationListDanglingReference(t *testing.T) {
	seed := &models.Reservation{Vehicle: "Toyota", Service: "Oil change", Status: "pending"}
	r := newReservationRouter(newReservationRepoStub(seed))

	w := doJSON(t, r, http.MethodGet, "/api/reservation", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.NotContains(t, list[0], "client")
}

func TestReservationGetMalformedID(t *testing.T) {
	r := newReservationRouter(newReservationRepoStub())

	w := doJSON(t, r, http.MethodGet, "/api/reservation/bad", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid ID format", decodeBody(t, w)["message"])
}

func TestReservationGetNotFound(t *testing.T) {
	r := newReservationRouter(newReservationRepoStub())

	w := doJSON(t, r, http.MethodGet, "/api/reservation/"+primitive.NewObjectID().Hex(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Reservation not found", decodeBody(t, w)["message"])
}

func TestReservationUpdateReturnsRecord(t *testing.T) {
	seed := &models.Reservation{
		ClientID: primitive.NewObjectID(),
		Vehicle:  "Old",
		Service:  "Old service",
		Status:   "pending",
	}
	r := newReservationRouter(newReservationRepoStub(seed))

	w := doJSON(t, r, http.MethodPut, "/api/reservation/"+seed.ID.Hex(),
		validReservationBody(primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Reservation updated successfully", body["message"])

	record, ok := body["reservation"].(map[string]any)
	require.True(t, ok, "response must nest the record under \"reservation\"")
	assert.Equal(t, "Toyota Corolla 2019", record["vehicle"])
	assert.Equal(t, "pending", record["status"])
}

func TestReservationUpdateNotFound(t *testing.T) {
	r := newReservationRouter(newReservationRepoStub())

	w := doJSON(t, r, http.MethodPut, "/api/reservation/"+primitive.NewObjectID().Hex(),
		validReservationBody(primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Reservation doesn't exist, can't update", decodeBody(t, w)["message"])
}

func TestReservationDeleteThenNotFound(t *testing.T) {
	seed := &models.Reservation{Vehicle: "Toyota", Service: "Oil change", Status: "pending"}
	r := newReservationRouter(newReservationRepoStub(seed))

	w := doJSON(t, r, http.MethodDelete, "/api/reservation/"+seed.ID.Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Reservation deleted successfully", decodeBody(t, w)["message"])

	w = doJSON(t, r, http.MethodDelete, "/api/reservation/"+seed.ID.Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
