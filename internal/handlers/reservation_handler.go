package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Aaron23010705/vehicle-service-api/internal/httperr"
	"github.com/Aaron23010705/vehicle-service-api/internal/httpresp"
	ucReservation "github.com/Aaron23010705/vehicle-service-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	list   *ucReservation.ListReservations
	get    *ucReservation.GetReservation
	create *ucReservation.CreateReservation
	update *ucReservation.UpdateReservation
	delete *ucReservation.DeleteReservation
}

func NewReservationHandler(
	list *ucReservation.ListReservations,
	get *ucReservation.GetReservation,
	create *ucReservation.CreateReservation,
	update *ucReservation.UpdateReservation,
	del *ucReservation.DeleteReservation,
) *ReservationHandler {
	return &ReservationHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ReservationRequest struct {
	ClientID string `json:"clientId"`
	Vehicle  string `json:"vehicle"`
	Service  string `json:"service"`
	Status   string `json:"status"`
}

func (r ReservationRequest) fields() ucReservation.Fields {
	return ucReservation.Fields{
		ClientID: r.ClientID,
		Vehicle:  r.Vehicle,
		Service:  r.Service,
		Status:   r.Status,
	}
}

// ======================================================
// ROUTES
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, reservations)
}

func (h *ReservationHandler) Get(c *gin.Context) {
	rv, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, rv)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "All fields are required")
		return
	}

	if err := h.create.Execute(c.Request.Context(), req.fields()); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, "Reservation saved successfully")
}

func (h *ReservationHandler) Update(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "All fields are required")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), c.Param("id"), req.fields())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Updated(c, "Reservation updated successfully", "reservation", updated)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Message(c, "Reservation deleted successfully")
}
