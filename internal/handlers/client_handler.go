package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Aaron23010705/vehicle-service-api/internal/httperr"
	"github.com/Aaron23010705/vehicle-service-api/internal/httpresp"
	ucClient "github.com/Aaron23010705/vehicle-service-api/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	list   *ucClient.ListClients
	get    *ucClient.GetClient
	create *ucClient.CreateClient
	update *ucClient.UpdateClient
	delete *ucClient.DeleteClient
}

func NewClientHandler(
	list *ucClient.ListClients,
	get *ucClient.GetClient,
	create *ucClient.CreateClient,
	update *ucClient.UpdateClient,
	del *ucClient.DeleteClient,
) *ClientHandler {
	return &ClientHandler{
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

// ClientRequest is the full client payload. Age is a pointer so an absent
// field is distinguishable from zero; the required check treats both the
// same way.
type ClientRequest struct {
	Name     string   `json:"name"`
	Password string   `json:"password"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Age      *float64 `json:"age"`
}

func (r ClientRequest) fields() ucClient.Fields {
	return ucClient.Fields{
		Name:     r.Name,
		Password: r.Password,
		Email:    r.Email,
		Phone:    r.Phone,
		Age:      r.Age,
	}
}

// ======================================================
// ROUTES
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	cl, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, cl)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "All fields are required")
		return
	}

	if err := h.create.Execute(c.Request.Context(), req.fields()); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, "Client saved successfully")
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "All fields are required")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), c.Param("id"), req.fields())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Updated(c, "Client updated successfully", "client", updated)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Message(c, "Client deleted successfully")
}
